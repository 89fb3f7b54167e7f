package shooter

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// SpawnConfig configures a SpawnController.
type SpawnConfig struct {
	IntervalSeconds float64
	MaxEnemies      int
	Difficulty      config.DifficultyConfig
	Enemy           config.EnemyConfig
	ProjectileSize  core.Vec2
	Damage          Damage
}

// SpawnController owns the enemy collection, the spawn timer and the difficulty tier.
type SpawnController struct {
	cfg    SpawnConfig
	curve  *config.DifficultyCurve
	arena  Arena
	player *Player
	drops  Dropper
	rng    *rand.Rand
	log    *log.Logger

	enemies        []*Enemy
	difficulty     int
	killCount      int
	lastDifficulty float64
	lastSpawn      float64
}

// NewSpawnController validates cfg and creates a controller with timers at zero.
func NewSpawnController(cfg SpawnConfig, arena Arena, player *Player, drops Dropper, rng *rand.Rand, logger *log.Logger) (*SpawnController, error) {
	switch {
	case cfg.IntervalSeconds <= 0:
		return nil, fmt.Errorf("shooter: spawn interval must be positive: %w", ErrInvalidParams)
	case cfg.MaxEnemies <= 0:
		return nil, fmt.Errorf("shooter: max enemies must be positive: %w", ErrInvalidParams)
	case cfg.Difficulty.InitialTier < 1:
		return nil, fmt.Errorf("shooter: difficulty must be at least 1, got %d: %w", cfg.Difficulty.InitialTier, ErrInvalidParams)
	case player == nil || drops == nil || rng == nil:
		return nil, fmt.Errorf("shooter: spawn controller needs player, dropper and random source: %w", ErrInvalidParams)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &SpawnController{
		cfg:    cfg,
		curve:  config.NewDifficultyCurve(cfg.Difficulty),
		arena:  arena,
		player: player,
		drops:  drops,
		rng:    rng,
		log:    logger.WithPrefix("spawner"),
	}
	c.Reset(0)
	return c, nil
}

// Update runs one frame of the enemy lifecycle and returns the number of
// enemies destroyed this frame.
func (c *SpawnController) Update(now float64) int {
	if c.curve.ShouldAdvance(now - c.lastDifficulty) {
		c.difficulty++
		c.lastDifficulty = now
		c.log.Debug("difficulty increased", "tier", c.difficulty)
	}

	if len(c.enemies) < c.cfg.MaxEnemies && now-c.lastSpawn >= c.cfg.IntervalSeconds {
		e, err := c.spawn(now)
		if err != nil {
			c.log.Warn("enemy spawn skipped", "tier", c.difficulty, "err", err)
		} else {
			c.enemies = append(c.enemies, e)
			c.lastSpawn = now
		}
	}

	for _, e := range c.enemies {
		if e.Spawning(now) {
			e.Update(now)
			continue
		}
		resolveEnemyCollisions(e, c.player, c.cfg.Damage)
		if !e.IsDestroyed() {
			e.Update(now)
		}
	}

	kills := 0
	alive := c.enemies[:0]
	for _, e := range c.enemies {
		if e.IsDestroyed() {
			c.drops.GeneratePowerUp(e.Position(), c.player)
			kills++
			continue
		}
		alive = append(alive, e)
	}
	clear(c.enemies[len(alive):])
	c.enemies = alive
	c.killCount += kills
	return kills
}

// spawn builds an enemy for the current tier at a random spot in the top half.
func (c *SpawnController) spawn(now float64) (*Enemy, error) {
	stats := c.curve.EnemyStats(c.difficulty)
	size := core.V(c.cfg.Enemy.Width, c.cfg.Enemy.Height)

	return NewEnemy(EnemyParams{
		Pos:             core.V(c.randUpTo(c.arena.W-size.X), c.randUpTo(c.arena.H/2-size.Y)),
		Size:            size,
		Health:          stats.Health,
		Speed:           stats.Speed,
		ShootCooldown:   stats.ShootCooldown,
		Level:           stats.Level,
		Variant:         c.randVariant(),
		ProjectileSize:  c.cfg.ProjectileSize,
		WanderInterval:  c.cfg.Enemy.WanderInterval,
		IntroSeconds:    c.cfg.Enemy.IntroSeconds,
		HitFlashSeconds: c.cfg.Enemy.HitFlashSeconds,
		SpawnedAt:       now,
	}, c.arena, c.rng)
}

// randUpTo returns a whole number in [0, limit), or 0 when the range is empty.
func (c *SpawnController) randUpTo(limit float64) float64 {
	if n := int(limit); n > 0 {
		return float64(c.rng.Intn(n))
	}
	return 0
}

func (c *SpawnController) randVariant() int {
	if c.cfg.Enemy.Variants <= 1 {
		return 0
	}
	return c.rng.Intn(c.cfg.Enemy.Variants)
}

// Reset clears enemies and kills, returns to the starting tier and restarts both timers at now.
func (c *SpawnController) Reset(now float64) {
	clear(c.enemies)
	c.enemies = c.enemies[:0]
	c.killCount = 0
	c.difficulty = c.curve.InitialTier()
	c.lastDifficulty = now
	c.lastSpawn = now
}

// Enemies returns the live enemies in spawn order.
func (c *SpawnController) Enemies() []*Enemy { return c.enemies }

// Difficulty returns the current tier.
func (c *SpawnController) Difficulty() int { return c.difficulty }

// KillCount returns enemies destroyed since the last Reset.
func (c *SpawnController) KillCount() int { return c.killCount }

func (c *SpawnController) MaxEnemies() int { return c.cfg.MaxEnemies }
