package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Direction is a single autonomous movement choice.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirRight
	DirLeft
)

// wanderChoices is the closed set an enemy draws from every wander interval.
var wanderChoices = [...]Direction{DirNone, DirUp, DirDown, DirRight, DirLeft}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	default:
		return "none"
	}
}

// Intent returns the movement intent for a single direction.
func (d Direction) Intent() Intent {
	return Intent{
		Up:    d == DirUp,
		Down:  d == DirDown,
		Left:  d == DirLeft,
		Right: d == DirRight,
	}
}

// Intent is the set of directions held during one tick.
type Intent struct {
	Up, Down, Left, Right bool
}

// IntentFrom extracts movement intent from an input frame.
func IntentFrom(in core.InputFrame) Intent {
	return Intent{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}
}

// Horizontal returns -1, 0 or 1. Opposite keys cancel.
func (i Intent) Horizontal() float64 {
	return axis(i.Left, i.Right)
}

// Vertical returns -1, 0 or 1 in screen coordinates (down is positive).
func (i Intent) Vertical() float64 {
	return axis(i.Up, i.Down)
}

func axis(neg, pos bool) float64 {
	switch {
	case neg && !pos:
		return -1
	case pos && !neg:
		return 1
	default:
		return 0
	}
}

// ClampedStep moves a box by speed in the intended direction.
// Each axis is applied only if the box stays inside the arena on that axis.
// Diagonal steps scale both components by 1/√2.
func ClampedStep(pos, size core.Vec2, speed float64, arena Arena, in Intent) core.Vec2 {
	dx := in.Horizontal() * speed
	dy := in.Vertical() * speed
	if dx != 0 && dy != 0 {
		dx /= math.Sqrt2
		dy /= math.Sqrt2
	}

	next := pos
	if nx := pos.X + dx; dx != 0 && nx >= 0 && nx+size.X <= arena.W {
		next.X = nx
	}
	if ny := pos.Y + dy; dy != 0 && ny >= 0 && ny+size.Y <= arena.H {
		next.Y = ny
	}
	return next
}

// Facing is the ship sprite frame chosen from horizontal input.
type Facing int

const (
	FacingCenter Facing = iota
	FacingLeft
	FacingRight
)

func facingFor(in Intent) Facing {
	switch in.Horizontal() {
	case -1:
		return FacingLeft
	case 1:
		return FacingRight
	default:
		return FacingCenter
	}
}
