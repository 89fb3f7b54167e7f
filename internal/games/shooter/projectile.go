package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Projectile travels vertically at a constant speed.
// Friendly projectiles move toward decreasing Y, foe projectiles toward increasing Y.
type Projectile struct {
	Pos      core.Vec2
	Size     core.Vec2
	Speed    float64
	Damage   int
	Friendly bool
}

// Advance moves the projectile one step along its direction.
func (p *Projectile) Advance() {
	if p.Friendly {
		p.Pos.Y -= p.Speed
	} else {
		p.Pos.Y += p.Speed
	}
}

// IsOutOfBounds reports whether Y has left [0, arenaH].
func (p *Projectile) IsOutOfBounds(arenaH float64) bool {
	return p.Pos.Y < 0 || p.Pos.Y > arenaH
}

// Box returns the projectile bounding box.
func (p *Projectile) Box() core.Box {
	return core.NewBox(p.Pos, p.Size)
}

// advanceProjectiles steps every projectile and keeps the in-bounds ones.
func advanceProjectiles(ps []*Projectile, arenaH float64) []*Projectile {
	for _, p := range ps {
		p.Advance()
	}
	return retainProjectiles(ps, func(p *Projectile) bool {
		return !p.IsOutOfBounds(arenaH)
	})
}

// retainProjectiles filters in place and clears the dropped tail.
func retainProjectiles(ps []*Projectile, keep func(*Projectile) bool) []*Projectile {
	kept := ps[:0]
	for _, p := range ps {
		if keep(p) {
			kept = append(kept, p)
		}
	}
	clear(ps[len(kept):])
	return kept
}
