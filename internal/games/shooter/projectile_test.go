package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestProjectileDirection(t *testing.T) {
	friendly := &Projectile{Pos: core.V(10, 100), Speed: 5, Friendly: true}
	foe := &Projectile{Pos: core.V(10, 100), Speed: 2}

	friendly.Advance()
	foe.Advance()

	assert.Equal(t, core.V(10, 95), friendly.Pos)
	assert.Equal(t, core.V(10, 102), foe.Pos)
}

func TestProjectileOutOfBounds(t *testing.T) {
	tests := []struct {
		y    float64
		want bool
	}{
		{-0.1, true},
		{0, false},
		{225, false},
		{450, false},
		{450.1, true},
	}
	for _, tc := range tests {
		p := &Projectile{Pos: core.V(0, tc.y)}
		assert.Equal(t, tc.want, p.IsOutOfBounds(450), "y=%v", tc.y)
	}
}

// A friendly shot at Y=400 moving 5 per step is still in bounds at Y=0 (step 80)
// and leaves on step 81 at Y=-5.
func TestFriendlyProjectileLeavesTopAfter81Steps(t *testing.T) {
	ps := []*Projectile{{Pos: core.V(100, 400), Size: core.V(8, 16), Speed: 5, Friendly: true}}

	steps := 0
	for len(ps) > 0 {
		ps = advanceProjectiles(ps, 450)
		steps++
		require.LessOrEqual(t, steps, 1000)
	}
	assert.Equal(t, 81, steps)
}

func TestAdvanceProjectilesKeepsOrder(t *testing.T) {
	a := &Projectile{Pos: core.V(0, 2), Speed: 5, Friendly: true}
	b := &Projectile{Pos: core.V(0, 200), Speed: 5, Friendly: true}
	c := &Projectile{Pos: core.V(0, 448), Speed: 5}
	d := &Projectile{Pos: core.V(0, 300), Speed: 5}

	got := advanceProjectiles([]*Projectile{a, b, c, d}, 450)

	require.Len(t, got, 2)
	assert.Same(t, b, got[0])
	assert.Same(t, d, got[1])
}
