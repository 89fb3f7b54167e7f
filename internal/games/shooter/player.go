package shooter

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// PlayerParams are the construction parameters for the player ship.
type PlayerParams struct {
	Pos             core.Vec2
	Size            core.Vec2
	Speed           float64
	Health          int
	ShootCooldown   float64
	Damage          int
	ProjectileSpeed float64
	ProjectileSize  core.Vec2
}

// Player is the user-controlled ship.
type Player struct {
	vitals
	gun

	params PlayerParams
	arena  Arena

	pos       core.Vec2
	size      core.Vec2
	speed     float64
	damage    int
	projSpeed float64
	projSize  core.Vec2

	intent Intent
	firing bool
	facing Facing
}

// NewPlayer validates params and creates a player.
func NewPlayer(p PlayerParams, arena Arena) (*Player, error) {
	switch {
	case !arena.contains(p.Pos):
		return nil, fmt.Errorf("shooter: player position %v outside arena: %w", p.Pos, ErrInvalidParams)
	case p.Speed <= 0:
		return nil, fmt.Errorf("shooter: player speed must be positive: %w", ErrInvalidParams)
	case p.Health < 0 || p.Health > MaxHealth:
		return nil, fmt.Errorf("shooter: player health %d outside [0,%d]: %w", p.Health, MaxHealth, ErrInvalidParams)
	case p.Size.X <= 0 || p.Size.Y <= 0:
		return nil, fmt.Errorf("shooter: player size must be positive: %w", ErrInvalidParams)
	case p.ShootCooldown <= 0:
		return nil, fmt.Errorf("shooter: player cooldown must be positive: %w", ErrInvalidParams)
	case p.ProjectileSpeed <= 0:
		return nil, fmt.Errorf("shooter: player projectile speed must be positive: %w", ErrInvalidParams)
	case p.ProjectileSize.X <= 0 || p.ProjectileSize.Y <= 0:
		return nil, fmt.Errorf("shooter: projectile size must be positive: %w", ErrInvalidParams)
	case p.Damage < 0:
		return nil, fmt.Errorf("shooter: player damage must not be negative: %w", ErrInvalidParams)
	}

	pl := &Player{params: p, arena: arena}
	pl.Respawn()
	return pl, nil
}

// Respawn restores the construction state: position, health, upgrades and projectiles.
func (p *Player) Respawn() {
	p.vitals = vitals{health: p.params.Health}
	p.gun.reset(p.params.ShootCooldown)
	p.pos = p.params.Pos
	p.size = p.params.Size
	p.speed = p.params.Speed
	p.damage = p.params.Damage
	p.projSpeed = p.params.ProjectileSpeed
	p.projSize = p.params.ProjectileSize
	p.intent = Intent{}
	p.firing = false
	p.facing = FacingCenter
}

// SetControls records the input used by the next Update.
func (p *Player) SetControls(in Intent, fire bool) {
	p.intent = in
	p.firing = fire
}

// Update shoots if requested, moves within the arena and advances owned projectiles.
func (p *Player) Update(now float64) {
	if p.firing {
		p.TryShoot(now)
	}
	p.pos = ClampedStep(p.pos, p.size, p.speed, p.arena, p.intent)
	p.facing = facingFor(p.intent)
	p.gun.advance(p.arena.H)
}

// TryShoot fires a friendly projectile from the center-top if the cooldown allows.
func (p *Player) TryShoot(now float64) bool {
	if !p.ready(now) {
		return false
	}
	p.fire(now, &Projectile{
		Pos:      muzzle(p.pos, p.size, p.projSize, p.pos.Y),
		Size:     p.projSize,
		Speed:    p.projSpeed,
		Damage:   p.damage,
		Friendly: true,
	})
	return true
}

// IncreaseShootingSpeed shortens the cooldown by d seconds, floored at zero.
func (p *Player) IncreaseShootingSpeed(d float64) {
	p.cooldown = max(0, p.cooldown-d)
}

// IncreaseDamage adds n to the damage carried by future projectiles.
func (p *Player) IncreaseDamage(n int) {
	p.damage += n
}

func (p *Player) Position() core.Vec2 { return p.pos }
func (p *Player) Size() core.Vec2     { return p.size }
func (p *Player) Box() core.Box       { return core.NewBox(p.pos, p.size) }
func (p *Player) Damage() int         { return p.damage }
func (p *Player) Cooldown() float64   { return p.cooldown }
func (p *Player) Facing() Facing      { return p.facing }
