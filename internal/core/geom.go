// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec2 is a 2D vector in arena units.
type Vec2 struct {
	X, Y float64
}

// V creates a new vector.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Box is an axis-aligned bounding box covering [Pos, Pos+Size).
type Box struct {
	Pos  Vec2
	Size Vec2
}

// NewBox creates a box from position and size.
func NewBox(pos, size Vec2) Box {
	return Box{Pos: pos, Size: size}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Pos.X + b.Size.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Pos.Y + b.Size.Y
}

// Overlaps reports whether two boxes intersect.
func (b Box) Overlaps(other Box) bool {
	return Overlaps(b.Pos, b.Size, other.Pos, other.Size)
}

// Overlaps is the AABB test used by every pairwise interaction.
// All four comparisons are strict, so rectangles that only share an edge
// do not collide.
func Overlaps(posA, sizeA, posB, sizeB Vec2) bool {
	return posA.X < posB.X+sizeB.X &&
		posA.X+sizeA.X > posB.X &&
		posA.Y < posB.Y+sizeB.Y &&
		posA.Y+sizeA.Y > posB.Y
}

// Rect represents an integer cell rectangle on the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
