package shooter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

func newTestGame(t *testing.T, opts registry.Options) *Game {
	t.Helper()
	// Pin the config so a user file in ~/.arcade cannot leak into tests.
	if opts.ConfigPath == "" {
		opts.ConfigPath = writeConfig(t, "enemy:\n  intro_seconds: 0\n")
	}
	g := New(opts)
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	g.Reset(cfg)
	return g
}

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestRegistered(t *testing.T) {
	assert.True(t, registry.Exists("shooter"))
	assert.True(t, registry.Exists("shooter_survival"))

	g, err := registry.Create("shooter", registry.Options{})
	require.NoError(t, err)
	assert.Equal(t, "Space Shooter", g.Title())
}

func TestResetPlacesPlayerAtBottomCenter(t *testing.T) {
	g := newTestGame(t, registry.Options{})

	p := g.Player()
	assert.Equal(t, core.V(376, 390), p.Position())
	assert.Equal(t, 100, p.Health())
	assert.Equal(t, 1, g.Difficulty())
	assert.False(t, g.State().GameOver)
	assert.Equal(t, 0, g.State().Score)
}

func TestStepMovesAndFires(t *testing.T) {
	g := newTestGame(t, registry.Options{})

	g.Step(core.NewInputFrame(core.ActionLeft, core.ActionFire))

	assert.Equal(t, core.V(371, 390), g.Player().Position())
	assert.Len(t, g.Player().Projectiles(), 1)
	assert.Equal(t, FacingLeft, g.Player().Facing())
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, registry.Options{})

	res := g.Step(core.NewInputFrame(core.ActionPause))
	assert.True(t, res.State.Paused)

	before := g.Player().Position()
	g.Step(core.NewInputFrame(core.ActionRight))
	assert.Equal(t, before, g.Player().Position(), "paused game ignores movement")

	res = g.Step(core.NewInputFrame(core.ActionPause))
	assert.False(t, res.State.Paused)
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, registry.Options{})
	g.Step(core.NewInputFrame())

	g.Player().TakeDamage(100)
	res := g.Step(core.NewInputFrame())
	require.True(t, res.State.GameOver)

	// Movement is ignored after death
	g.Step(core.NewInputFrame(core.ActionLeft))
	assert.True(t, g.State().GameOver)

	res = g.Step(core.NewInputFrame(core.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 100, g.Player().Health())
	assert.Equal(t, 0, g.State().Score)
	assert.Empty(t, g.Spawner().Enemies())
	assert.Empty(t, g.PowerUps().PowerUps())
	assert.Equal(t, 0.0, g.ElapsedSeconds())
}

func TestEnemiesSpawnOverTime(t *testing.T) {
	g := newTestGame(t, registry.Options{})

	for range 60 * 5 {
		g.Step(core.NewInputFrame())
	}
	assert.NotEmpty(t, g.Spawner().Enemies())
	assert.InDelta(t, 5.0, g.ElapsedSeconds(), 1e-6)
}

func TestSameSeedSameRun(t *testing.T) {
	a := newTestGame(t, registry.Options{})
	b := newTestGame(t, registry.Options{})

	inputs := []core.Action{core.ActionLeft, core.ActionFire, core.ActionRight, core.ActionUp, core.ActionNone}
	for i := range 60 * 20 {
		in := core.NewInputFrame(inputs[i%len(inputs)], core.ActionFire)
		a.Step(in)
		b.Step(in)
	}

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestSurvivalStartsHarder(t *testing.T) {
	g := NewSurvival(registry.Options{ConfigPath: writeConfig(t, "arena:\n  width: 800\n")})
	g.Reset(core.DefaultConfig())

	assert.Equal(t, "shooter_survival", g.ID())
	assert.Equal(t, 3, g.Difficulty())
	assert.Equal(t, 8, g.Spawner().MaxEnemies())
}

func TestDifficultyOption(t *testing.T) {
	g := newTestGame(t, registry.Options{Difficulty: "easy"})
	assert.Equal(t, 3, g.Spawner().MaxEnemies())

	g = newTestGame(t, registry.Options{Difficulty: "bogus"})
	assert.Equal(t, 5, g.Spawner().MaxEnemies(), "unknown difficulty keeps the loaded config")
}

func TestBadConfigFallsBackToDefaults(t *testing.T) {
	g := New(registry.Options{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	g.Reset(core.DefaultConfig())

	require.NotNil(t, g.Player())
	assert.Equal(t, 800.0, g.arena.W)
}

func TestRender(t *testing.T) {
	g := newTestGame(t, registry.Options{})
	for range 60 * 3 {
		g.Step(core.NewInputFrame(core.ActionFire))
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.True(t, strings.HasPrefix(screen.Row(0), "HP "))
	assert.Contains(t, screen.Row(0), "Kills")
	assert.Equal(t, '┌', screen.Get(0, 1))
	assert.Contains(t, screen.String(), string(facingGlyphs[FacingCenter]))
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, registry.Options{})
	g.Player().TakeDamage(100)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
}

func TestScreenTooSmall(t *testing.T) {
	g := New(registry.Options{})
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60})

	g.Step(core.NewInputFrame(core.ActionLeft))
	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "too small")
}

func TestViewportCellsStayInside(t *testing.T) {
	vp := newViewport(testArena, core.NewRect(0, 1, 80, 23))

	r := vp.cells(core.NewBox(core.V(0, 0), core.V(800, 450)))
	assert.Equal(t, core.NewRect(1, 2, 78, 21), r)

	r = vp.cells(core.NewBox(core.V(799, 449), core.V(1, 1)))
	assert.Equal(t, 1, r.W)
	assert.Equal(t, 1, r.H)
	assert.Equal(t, 78, r.X)
	assert.Equal(t, 22, r.Y)
}

func TestResizeKeepsRun(t *testing.T) {
	g := newTestGame(t, registry.Options{})
	for range 30 {
		g.Step(core.NewInputFrame(core.ActionLeft))
	}
	pos := g.Player().Position()

	g.Resize(20, 10)
	g.Step(core.NewInputFrame(core.ActionLeft))
	assert.Equal(t, pos, g.Player().Position(), "too-small screen halts the simulation")

	g.Resize(120, 40)
	g.Step(core.NewInputFrame(core.ActionLeft))
	assert.Less(t, g.Player().Position().X, pos.X)
}

// A contact kill drops a pickup onto the wreck; it must not bring the ship back.
func TestContactKillIsTerminalDespiteRepairDrop(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g := New(registry.Options{ConfigPath: writeConfig(t, "enemy:\n  intro_seconds: 0\n")})
		cfg := core.DefaultConfig()
		cfg.Seed = seed
		g.Reset(cfg)

		p := g.Player()
		p.TakeDamage(90)
		g.spawner.enemies = []*Enemy{newTestEnemy(t, enemyParams(p.Position()))}
		repair := &PowerUp{Pos: p.Position(), Size: core.V(20, 20), Type: PowerUpRepair, speed: 3, player: p}
		g.powerUps.powerUps = []*PowerUp{repair}

		res := g.Step(core.NewInputFrame())

		require.True(t, res.State.GameOver, "seed %d", seed)
		assert.Equal(t, 0, p.Health(), "seed %d", seed)
		assert.False(t, repair.Used(), "seed %d", seed)

		g.Step(core.NewInputFrame())
		assert.Equal(t, 0, p.Health(), "seed %d: no repair after game over", seed)
	}
}

func TestSurvivalRestartReturnsToStartTier(t *testing.T) {
	g := NewSurvival(registry.Options{ConfigPath: writeConfig(t, "enemy:\n  intro_seconds: 0\n")})
	g.Reset(core.DefaultConfig())
	g.spawner.difficulty = 6

	g.Player().TakeDamage(100)
	require.True(t, g.Step(core.NewInputFrame()).State.GameOver)
	g.Step(core.NewInputFrame(core.ActionRestart))

	assert.Equal(t, 3, g.Difficulty(), "survival restarts at its own starting tier, not 1")
}
