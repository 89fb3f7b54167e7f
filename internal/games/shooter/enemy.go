package shooter

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// EnemyParams are the construction parameters for one enemy.
type EnemyParams struct {
	Pos            core.Vec2
	Size           core.Vec2
	Health         int
	Speed          float64
	ShootCooldown  float64
	Level          int
	Variant        int
	ProjectileSize core.Vec2

	WanderInterval  float64
	IntroSeconds    float64
	HitFlashSeconds float64
	SpawnedAt       float64
}

// Enemy is an autonomous ship that wanders and fires downward.
type Enemy struct {
	vitals
	gun

	arena Arena
	rng   *rand.Rand

	pos      core.Vec2
	size     core.Vec2
	speed    float64
	level    int
	variant  int
	projSize core.Vec2

	wanderInterval float64
	lastMove       float64

	spawnedAt    float64
	introSeconds float64

	hitFlash float64
	hitAt    float64
	justHit  bool

	// last time seen by Update, used to stamp hits
	now float64
}

// NewEnemy validates params and creates an enemy. Health above MaxHealth is
// accepted here; the clamp only applies through Repair.
func NewEnemy(p EnemyParams, arena Arena, rng *rand.Rand) (*Enemy, error) {
	switch {
	case !arena.contains(p.Pos):
		return nil, fmt.Errorf("shooter: enemy position %v outside arena: %w", p.Pos, ErrInvalidParams)
	case p.Health <= 0:
		return nil, fmt.Errorf("shooter: enemy health must be positive, got %d: %w", p.Health, ErrInvalidParams)
	case p.Speed <= 0:
		return nil, fmt.Errorf("shooter: enemy speed must be positive: %w", ErrInvalidParams)
	case p.Size.X <= 0 || p.Size.Y <= 0:
		return nil, fmt.Errorf("shooter: enemy size must be positive: %w", ErrInvalidParams)
	case p.ShootCooldown <= 0:
		return nil, fmt.Errorf("shooter: enemy cooldown must be positive: %w", ErrInvalidParams)
	case p.Level <= 0:
		return nil, fmt.Errorf("shooter: enemy level must be positive, got %d: %w", p.Level, ErrInvalidParams)
	case p.ProjectileSize.X <= 0 || p.ProjectileSize.Y <= 0:
		return nil, fmt.Errorf("shooter: projectile size must be positive: %w", ErrInvalidParams)
	case p.WanderInterval <= 0:
		return nil, fmt.Errorf("shooter: wander interval must be positive: %w", ErrInvalidParams)
	case rng == nil:
		return nil, fmt.Errorf("shooter: enemy needs a random source: %w", ErrInvalidParams)
	}

	return &Enemy{
		vitals:         vitals{health: p.Health},
		gun:            gun{cooldown: p.ShootCooldown},
		arena:          arena,
		rng:            rng,
		pos:            p.Pos,
		size:           p.Size,
		speed:          p.Speed,
		level:          p.Level,
		variant:        p.Variant,
		projSize:       p.ProjectileSize,
		wanderInterval: p.WanderInterval,
		lastMove:       p.SpawnedAt,
		spawnedAt:      p.SpawnedAt,
		introSeconds:   p.IntroSeconds,
		hitFlash:       p.HitFlashSeconds,
		now:            p.SpawnedAt,
	}, nil
}

// Spawning reports whether the enemy is still in its spawn-in window.
// A spawning enemy is neither simulated nor collidable.
func (e *Enemy) Spawning(now float64) bool {
	return now-e.spawnedAt < e.introSeconds
}

// Update wanders, fires when ready and advances owned projectiles.
func (e *Enemy) Update(now float64) {
	e.now = now
	if e.Spawning(now) {
		return
	}
	if e.justHit && now-e.hitAt >= e.hitFlash {
		e.justHit = false
	}
	e.wander(now)
	e.TryShoot(now)
	e.gun.advance(e.arena.H)
}

func (e *Enemy) wander(now float64) {
	if now-e.lastMove < e.wanderInterval {
		return
	}
	dir := wanderChoices[e.rng.Intn(len(wanderChoices))]
	e.pos = ClampedStep(e.pos, e.size, e.speed, e.arena, dir.Intent())
	e.lastMove = now
}

// TryShoot fires a foe projectile whose speed and damage grow with level.
func (e *Enemy) TryShoot(now float64) bool {
	if !e.ready(now) {
		return false
	}
	e.fire(now, &Projectile{
		Pos:    muzzle(e.pos, e.size, e.projSize, e.pos.Y+e.size.Y),
		Size:   e.projSize,
		Speed:  float64(1 + e.level),
		Damage: 1 + e.level,
	})
	return true
}

// TakeDamage applies damage and starts the hit cue.
func (e *Enemy) TakeDamage(amount int) {
	e.vitals.TakeDamage(amount)
	e.justHit = true
	e.hitAt = e.now
}

// kill forces health to zero without starting the hit cue.
func (e *Enemy) kill() {
	e.health = 0
}

func (e *Enemy) Position() core.Vec2 { return e.pos }
func (e *Enemy) Size() core.Vec2     { return e.size }
func (e *Enemy) Box() core.Box       { return core.NewBox(e.pos, e.size) }
func (e *Enemy) Level() int          { return e.level }
func (e *Enemy) Variant() int        { return e.variant }

// JustHit reports whether the hit cue is active. Presentation only.
func (e *Enemy) JustHit() bool { return e.justHit }
