package shooter

import (
	"errors"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// ErrInvalidParams is wrapped by every constructor validation failure.
var ErrInvalidParams = errors.New("invalid parameters")

// Arena is the fixed rectangular simulation area, in arena units.
type Arena struct {
	W, H float64
}

// contains reports whether a point lies within [0,W]x[0,H].
func (a Arena) contains(p core.Vec2) bool {
	return p.X >= 0 && p.X <= a.W && p.Y >= 0 && p.Y <= a.H
}
