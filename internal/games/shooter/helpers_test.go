package shooter

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

var testArena = Arena{W: 800, H: 450}

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func playerParams(pos core.Vec2) PlayerParams {
	return PlayerParams{
		Pos:             pos,
		Size:            core.V(48, 48),
		Speed:           5,
		Health:          100,
		ShootCooldown:   0.25,
		Damage:          10,
		ProjectileSpeed: 5,
		ProjectileSize:  core.V(8, 16),
	}
}

func newTestPlayer(t *testing.T, pos core.Vec2) *Player {
	t.Helper()
	p, err := NewPlayer(playerParams(pos), testArena)
	require.NoError(t, err)
	return p
}

func enemyParams(pos core.Vec2) EnemyParams {
	return EnemyParams{
		Pos:            pos,
		Size:           core.V(48, 48),
		Health:         110,
		Speed:          1.1,
		ShootCooldown:  4,
		Level:          1,
		ProjectileSize: core.V(8, 16),
		WanderInterval: 3,
	}
}

func newTestEnemy(t *testing.T, p EnemyParams) *Enemy {
	t.Helper()
	e, err := NewEnemy(p, testArena, testRNG())
	require.NoError(t, err)
	return e
}

// recordingDropper captures destruction events.
type recordingDropper struct {
	drops []core.Vec2
}

func (d *recordingDropper) GeneratePowerUp(pos core.Vec2, _ *Player) {
	d.drops = append(d.drops, pos)
}

func testSpawnConfig() SpawnConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Enemy.IntroSeconds = 0
	return SpawnConfig{
		IntervalSeconds: cfg.Spawner.IntervalSeconds,
		MaxEnemies:      cfg.Spawner.MaxEnemies,
		Difficulty:      cfg.Difficulty,
		Enemy:           cfg.Enemy,
		ProjectileSize:  core.V(cfg.Projectile.Width, cfg.Projectile.Height),
		Damage:          DefaultDamage,
	}
}

// insideArena reports whether b lies fully within testArena.
func insideArena(b core.Box) bool {
	return b.Pos.X >= 0 && b.Pos.Y >= 0 && b.Right() <= testArena.W && b.Bottom() <= testArena.H
}

// runTicks drives fn at 60 ticks per second for the given number of seconds.
func runTicks(clock core.Clock, seconds float64, fn func(now float64)) {
	n := int(seconds * 60)
	for range n {
		clock.Tick()
		fn(clock.Now())
	}
}
