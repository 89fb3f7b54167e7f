package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// PowerUpType is the closed set of pickup effects.
type PowerUpType int

const (
	PowerUpRepair PowerUpType = iota
	PowerUpShootSpeed
	PowerUpDamage
)

var powerUpTypes = [...]PowerUpType{PowerUpRepair, PowerUpShootSpeed, PowerUpDamage}

func (t PowerUpType) String() string {
	switch t {
	case PowerUpRepair:
		return "repair"
	case PowerUpShootSpeed:
		return "shoot-speed"
	case PowerUpDamage:
		return "damage"
	default:
		return "unknown"
	}
}

// PowerUpEffects are the amounts applied when a pickup is consumed.
type PowerUpEffects struct {
	Repair         int
	ShootSpeedStep float64
	DamageStep     int
}

// PowerUp is a falling pickup bound to the player it can buff.
type PowerUp struct {
	Pos  core.Vec2
	Size core.Vec2
	Type PowerUpType

	speed  float64
	player *Player
	used   bool
}

// Box returns the pickup bounding box.
func (p *PowerUp) Box() core.Box {
	return core.NewBox(p.Pos, p.Size)
}

// Used reports whether the effect has been applied.
func (p *PowerUp) Used() bool {
	return p.used
}

// Dropper receives enemy destruction events.
type Dropper interface {
	GeneratePowerUp(pos core.Vec2, player *Player)
}

// PowerUpSettings configure a PowerUpController.
type PowerUpSettings struct {
	Size    core.Vec2
	Speed   float64
	Effects PowerUpEffects
}

// PowerUpController owns the active pickups of one session.
type PowerUpController struct {
	settings PowerUpSettings
	arena    Arena
	rng      *rand.Rand
	powerUps []*PowerUp
}

// NewPowerUpController creates an empty controller.
func NewPowerUpController(s PowerUpSettings, arena Arena, rng *rand.Rand) *PowerUpController {
	return &PowerUpController{settings: s, arena: arena, rng: rng}
}

// GeneratePowerUp drops one pickup of a uniformly random type at pos.
func (c *PowerUpController) GeneratePowerUp(pos core.Vec2, player *Player) {
	c.powerUps = append(c.powerUps, &PowerUp{
		Pos:    pos,
		Size:   c.settings.Size,
		Type:   powerUpTypes[c.rng.Intn(len(powerUpTypes))],
		speed:  c.settings.Speed,
		player: player,
	})
}

// Update drops every pickup, applies the ones touching their player and
// keeps those still unused and inside the arena.
func (c *PowerUpController) Update() {
	for _, pu := range c.powerUps {
		pu.Pos.Y += pu.speed
		if pu.player != nil && pu.Box().Overlaps(pu.player.Box()) {
			c.apply(pu)
		}
	}

	kept := c.powerUps[:0]
	for _, pu := range c.powerUps {
		if !pu.used && pu.Pos.Y <= c.arena.H {
			kept = append(kept, pu)
		}
	}
	clear(c.powerUps[len(kept):])
	c.powerUps = kept
}

// apply is a no-op for used pickups and destroyed players.
func (c *PowerUpController) apply(pu *PowerUp) {
	if pu.used || pu.player.IsDestroyed() {
		return
	}
	fx := c.settings.Effects
	switch pu.Type {
	case PowerUpRepair:
		pu.player.Repair(fx.Repair)
	case PowerUpShootSpeed:
		pu.player.IncreaseShootingSpeed(fx.ShootSpeedStep)
	case PowerUpDamage:
		pu.player.IncreaseDamage(fx.DamageStep)
	}
	pu.used = true
}

// PowerUps returns the active pickups.
func (c *PowerUpController) PowerUps() []*PowerUp {
	return c.powerUps
}

// Reset removes every pickup.
func (c *PowerUpController) Reset() {
	clear(c.powerUps)
	c.powerUps = c.powerUps[:0]
}
