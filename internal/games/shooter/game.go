// Package shooter implements a top-down space shooter: the player ship holds
// the bottom of the arena while enemies spawn in the top half, wander, fire
// downward and drop power-ups when destroyed. Enemy stats escalate by tier
// over time.
package shooter

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// GameMode selects the default tuning.
type GameMode int

const (
	ModeClassic  GameMode = iota // Loaded config as-is
	ModeSurvival                 // Hard preset unless a difficulty is given
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// Game implements registry.Game for the shooter.
type Game struct {
	mode GameMode
	opts registry.Options
	log  *log.Logger

	runtime core.RuntimeConfig
	cfg     config.ShooterConfig
	arena   Arena
	rng     *rand.Rand
	clock   core.Clock

	player   *Player
	powerUps *PowerUpController
	spawner  *SpawnController

	state     string
	tickCount uint64
	startedAt float64

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

var (
	_ registry.Game        = (*Game)(nil)
	_ registry.Snapshotter = (*Game)(nil)
	_ registry.RunStats    = (*Game)(nil)
	_ registry.Resizer     = (*Game)(nil)
)

// New creates a classic shooter.
func New(opts registry.Options) *Game {
	return newGame(ModeClassic, opts)
}

// NewSurvival creates a shooter that starts at the hard preset.
func NewSurvival(opts registry.Options) *Game {
	return newGame(ModeSurvival, opts)
}

func newGame(mode GameMode, opts registry.Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		mode:       mode,
		opts:       opts,
		log:        logger,
		minScreenW: 40,
		minScreenH: 16,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeSurvival {
		return "shooter_survival"
	}
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeSurvival {
		return "Space Shooter (Survival)"
	}
	return "Space Shooter"
}

// Reset loads config and builds a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	cfg, err := config.LoadShooter(g.opts.ConfigPath)
	if err != nil {
		g.log.Error("config load failed, using defaults", "path", g.opts.ConfigPath, "err", err)
		cfg = config.DefaultShooterConfig()
	}
	preset, err := config.ParsePreset(g.opts.Difficulty)
	if err != nil {
		g.log.Warn("ignoring difficulty", "err", err)
	}
	if preset == "" && g.mode == ModeSurvival {
		preset = config.DifficultyHard
	}
	config.ApplyShooterPreset(&cfg, preset)

	if err := g.build(cfg, runtime); err != nil {
		// A user config can pass Validate and still fail construction; defaults never do.
		g.log.Error("session setup failed, using defaults", "err", err)
		if err := g.build(config.DefaultShooterConfig(), runtime); err != nil {
			panic(err)
		}
	}
}

// Resize updates the screen size. The arena is in world units, so the run continues.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// build wires the session from a config.
func (g *Game) build(cfg config.ShooterConfig, runtime core.RuntimeConfig) error {
	g.cfg = cfg
	g.arena = Arena{W: cfg.Arena.Width, H: cfg.Arena.Height}
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.clock = core.NewTickClock(runtime.TickRate)

	projSize := core.V(cfg.Projectile.Width, cfg.Projectile.Height)
	size := core.V(cfg.Player.Width, cfg.Player.Height)

	player, err := NewPlayer(PlayerParams{
		Pos:             core.V((g.arena.W-size.X)/2, g.arena.H-size.Y-cfg.Player.BottomMargin),
		Size:            size,
		Speed:           cfg.Player.Speed,
		Health:          cfg.Player.Health,
		ShootCooldown:   cfg.Player.ShootCooldown,
		Damage:          cfg.Player.Damage,
		ProjectileSpeed: cfg.Player.ProjectileSpeed,
		ProjectileSize:  projSize,
	}, g.arena)
	if err != nil {
		return err
	}

	powerUps := NewPowerUpController(PowerUpSettings{
		Size:  core.V(cfg.PowerUps.Width, cfg.PowerUps.Height),
		Speed: cfg.PowerUps.Speed,
		Effects: PowerUpEffects{
			Repair:         cfg.PowerUps.RepairAmount,
			ShootSpeedStep: cfg.PowerUps.ShootSpeedStep,
			DamageStep:     cfg.PowerUps.DamageStep,
		},
	}, g.arena, g.rng)

	spawner, err := NewSpawnController(SpawnConfig{
		IntervalSeconds: cfg.Spawner.IntervalSeconds,
		MaxEnemies:      cfg.Spawner.MaxEnemies,
		Difficulty:      cfg.Difficulty,
		Enemy:           cfg.Enemy,
		ProjectileSize:  projSize,
		Damage: Damage{
			Contact:          cfg.Combat.ContactDamage,
			PlayerProjectile: cfg.Combat.PlayerProjectileDamage,
			EnemyProjectile:  cfg.Combat.EnemyProjectileDamage,
		},
	}, g.arena, player, powerUps, g.rng, g.log)
	if err != nil {
		return err
	}

	g.player = player
	g.powerUps = powerUps
	g.spawner = spawner
	g.state = StatePlaying
	g.tickCount = 0
	g.startedAt = 0
	return nil
}

// restart brings the player back and clears both controllers. The clock keeps running.
func (g *Game) restart() {
	now := g.clock.Now()
	g.player.Respawn()
	g.spawner.Reset(now)
	g.powerUps.Reset()
	g.startedAt = now
	g.state = StatePlaying
	g.log.Info("run restarted")
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if g.state == StateGameOver {
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.clock.Tick()
	now := g.clock.Now()

	g.player.SetControls(IntentFrom(in), in.Has(core.ActionFire))
	g.player.Update(now)
	g.spawner.Update(now)

	// Pickups must not reach a ship destroyed earlier in this frame.
	if g.player.IsDestroyed() {
		g.state = StateGameOver
		g.log.Info("player destroyed", "kills", g.spawner.KillCount(), "tier", g.spawner.Difficulty())
		return core.StepResult{State: g.State()}
	}
	g.powerUps.Update()

	return core.StepResult{State: g.State()}
}

// State returns the current game state. Score is the kill count.
func (g *Game) State() core.GameState {
	score := 0
	if g.spawner != nil {
		score = g.spawner.KillCount()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Difficulty returns the current enemy tier.
func (g *Game) Difficulty() int {
	if g.spawner == nil {
		return 0
	}
	return g.spawner.Difficulty()
}

// ElapsedSeconds returns simulated time since the run started.
func (g *Game) ElapsedSeconds() float64 {
	if g.clock == nil {
		return 0
	}
	return g.clock.Now() - g.startedAt
}

// Player exposes the player ship for presenters and tests.
func (g *Game) Player() *Player { return g.player }

// Spawner exposes the enemy controller for presenters and tests.
func (g *Game) Spawner() *SpawnController { return g.spawner }

// PowerUps exposes the pickup controller for presenters and tests.
func (g *Game) PowerUps() *PowerUpController { return g.powerUps }

// Register the games with the registry
func init() {
	registry.Register("shooter", func(opts registry.Options) registry.Game {
		return New(opts)
	})
	registry.Register("shooter_survival", func(opts registry.Options) registry.Game {
		return NewSurvival(opts)
	})
}
