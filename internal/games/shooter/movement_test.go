package shooter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestClampedStepAxial(t *testing.T) {
	size := core.V(48, 48)
	start := core.V(100, 100)

	tests := []struct {
		name string
		in   Intent
		want core.Vec2
	}{
		{"up", Intent{Up: true}, core.V(100, 95)},
		{"down", Intent{Down: true}, core.V(100, 105)},
		{"left", Intent{Left: true}, core.V(95, 100)},
		{"right", Intent{Right: true}, core.V(105, 100)},
		{"none", Intent{}, start},
		{"opposite keys cancel", Intent{Left: true, Right: true}, start},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClampedStep(start, size, 5, testArena, tc.in)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClampedStepDiagonalKeepsSpeed(t *testing.T) {
	start := core.V(100, 100)
	got := ClampedStep(start, core.V(10, 10), 5, testArena, Intent{Up: true, Right: true})

	delta := core.V(got.X-start.X, got.Y-start.Y)
	assert.InDelta(t, 5, math.Hypot(delta.X, delta.Y), 1e-9)
	assert.InDelta(t, 5/math.Sqrt2, delta.X, 1e-9)
	assert.InDelta(t, -5/math.Sqrt2, delta.Y, 1e-9)
}

func TestClampedStepNeverLeavesArena(t *testing.T) {
	size := core.V(48, 48)
	intents := []Intent{
		{Up: true}, {Down: true}, {Left: true}, {Right: true},
		{Up: true, Left: true}, {Down: true, Right: true},
	}

	for _, in := range intents {
		pos := core.V(376, 200)
		for range 500 {
			pos = ClampedStep(pos, size, 7, testArena, in)
			assert.True(t, insideArena(core.NewBox(pos, size)), "escaped arena at %v with %+v", pos, in)
		}
	}
}

func TestClampedStepBlockedAxisOnly(t *testing.T) {
	size := core.V(48, 48)
	// Against the left wall: horizontal blocked, vertical still applies.
	pos := core.V(2, 200)
	got := ClampedStep(pos, size, 5, testArena, Intent{Left: true, Down: true})

	assert.Equal(t, 2.0, got.X)
	assert.InDelta(t, 200+5/math.Sqrt2, got.Y, 1e-9)
}

func TestClampedStepAwayFromWall(t *testing.T) {
	size := core.V(48, 48)
	pos := core.V(0, 0)

	got := ClampedStep(pos, size, 5, testArena, Intent{Right: true})
	assert.Equal(t, core.V(5, 0), got)

	pos = core.V(testArena.W-size.X, testArena.H-size.Y)
	got = ClampedStep(pos, size, 5, testArena, Intent{Up: true})
	assert.Equal(t, core.V(pos.X, pos.Y-5), got)
}

func TestDirectionIntent(t *testing.T) {
	assert.Equal(t, Intent{}, DirNone.Intent())
	assert.Equal(t, Intent{Up: true}, DirUp.Intent())
	assert.Equal(t, Intent{Left: true}, DirLeft.Intent())
	assert.Len(t, wanderChoices, 5)
}

func TestIntentFromInput(t *testing.T) {
	in := IntentFrom(core.NewInputFrame(core.ActionUp, core.ActionLeft, core.ActionFire))
	assert.Equal(t, Intent{Up: true, Left: true}, in)
	assert.Equal(t, FacingLeft, facingFor(in))
	assert.Equal(t, FacingRight, facingFor(Intent{Right: true}))
	assert.Equal(t, FacingCenter, facingFor(Intent{Up: true}))
}
