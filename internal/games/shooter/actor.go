package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// MaxHealth is the upper bound Repair clamps to.
const MaxHealth = 100

// Actor is the capability set shared by the player and enemies.
// Drawing is done by the presentation layer from the read-only accessors.
type Actor interface {
	Update(now float64)
	TryShoot(now float64) bool
	TakeDamage(amount int)
	Repair(amount int)
	IsDestroyed() bool
	Position() core.Vec2
	Size() core.Vec2
	Health() int
	Projectiles() []*Projectile
}

var (
	_ Actor = (*Player)(nil)
	_ Actor = (*Enemy)(nil)
)

// vitals holds health and its clamping rules.
type vitals struct {
	health int
}

// TakeDamage lowers health, never below zero.
func (v *vitals) TakeDamage(amount int) {
	v.health = max(0, v.health-amount)
}

// Repair raises health, never above MaxHealth.
func (v *vitals) Repair(amount int) {
	v.health = min(MaxHealth, v.health+amount)
}

// IsDestroyed reports whether health has reached zero.
func (v *vitals) IsDestroyed() bool {
	return v.health <= 0
}

// Health returns current health.
func (v *vitals) Health() int {
	return v.health
}

// gun gates shots by cooldown and owns the fired projectiles.
type gun struct {
	cooldown    float64
	lastShot    float64
	hasShot     bool
	projectiles []*Projectile
}

// ready reports whether the cooldown has elapsed. The first shot is always allowed.
func (g *gun) ready(now float64) bool {
	return !g.hasShot || now-g.lastShot >= g.cooldown
}

func (g *gun) fire(now float64, p *Projectile) {
	g.projectiles = append(g.projectiles, p)
	g.lastShot = now
	g.hasShot = true
}

// Projectiles returns the live projectiles owned by this actor.
func (g *gun) Projectiles() []*Projectile {
	return g.projectiles
}

// removeProjectiles drops every projectile in hit.
func (g *gun) removeProjectiles(hit map[*Projectile]struct{}) {
	if len(hit) == 0 {
		return
	}
	g.projectiles = retainProjectiles(g.projectiles, func(p *Projectile) bool {
		_, gone := hit[p]
		return !gone
	})
}

func (g *gun) advance(arenaH float64) {
	g.projectiles = advanceProjectiles(g.projectiles, arenaH)
}

func (g *gun) reset(cooldown float64) {
	clear(g.projectiles)
	*g = gun{cooldown: cooldown, projectiles: g.projectiles[:0]}
}

// muzzle returns the top-left of a projectile centered horizontally on a box at height y.
func muzzle(pos, size, projSize core.Vec2, y float64) core.Vec2 {
	return core.V(pos.X+(size.X-projSize.X)/2, y)
}
