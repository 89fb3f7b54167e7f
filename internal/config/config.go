// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// ShooterConfig contains all tunables for the space shooter.
// Distances are in arena units, times in seconds.
type ShooterConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Combat     CombatConfig     `yaml:"combat"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the simulation bounds.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	Health          int     `yaml:"health"`
	ShootCooldown   float64 `yaml:"shoot_cooldown"`
	Damage          int     `yaml:"damage"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	BottomMargin    float64 `yaml:"bottom_margin"` // Gap between ship and arena floor at spawn
}

// EnemyConfig defines per-enemy behavior that does not scale with tier.
type EnemyConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	WanderInterval  float64 `yaml:"wander_interval"`
	IntroSeconds    float64 `yaml:"intro_seconds"`     // Spawn-in window with no simulation
	HitFlashSeconds float64 `yaml:"hit_flash_seconds"` // How long the just-hit cue lasts
	Variants        int     `yaml:"variants"`          // Number of hull variants picked at spawn
}

// ProjectileConfig defines the bounding box shared by all projectiles.
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpawnerConfig defines enemy spawn pacing.
type SpawnerConfig struct {
	IntervalSeconds float64 `yaml:"interval_seconds"`
	MaxEnemies      int     `yaml:"max_enemies"`
}

// PowerUpConfig defines falling pickups and their effects.
type PowerUpConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	RepairAmount   int     `yaml:"repair_amount"`
	ShootSpeedStep float64 `yaml:"shoot_speed_step"` // Cooldown reduction per pickup
	DamageStep     int     `yaml:"damage_step"`
}

// CombatConfig holds the fixed damage values used by collision resolution.
type CombatConfig struct {
	ContactDamage          int `yaml:"contact_damage"`
	PlayerProjectileDamage int `yaml:"player_projectile_damage"`
	EnemyProjectileDamage  int `yaml:"enemy_projectile_damage"`
}

// DifficultyConfig defines the tier progression system.
type DifficultyConfig struct {
	Enabled         bool        `yaml:"enabled"`
	InitialTier     int         `yaml:"initial_tier"`
	IntervalSeconds float64     `yaml:"interval_seconds"` // Time between tier increases
	Curve           CurveConfig `yaml:"curve"`
}

// CurveConfig maps a tier to enemy stats:
// health = base_health + health_per_tier*tier,
// speed = base_speed + speed_per_tier*tier,
// cooldown = max(min_cooldown, base_cooldown - tier).
type CurveConfig struct {
	BaseHealth    int     `yaml:"base_health"`
	HealthPerTier int     `yaml:"health_per_tier"`
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedPerTier  float64 `yaml:"speed_per_tier"`
	BaseCooldown  float64 `yaml:"base_cooldown"`
	MinCooldown   float64 `yaml:"min_cooldown"`
}

// Validate reports the first out-of-range value.
func (c ShooterConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Arena.Width > 0 && c.Arena.Height > 0, "arena size must be positive"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive"},
		{c.Player.Width <= c.Arena.Width && c.Player.Height <= c.Arena.Height, "player must fit in arena"},
		{c.Player.Speed > 0, "player speed must be positive"},
		{c.Player.Health >= 0 && c.Player.Health <= 100, "player health must be within [0,100]"},
		{c.Player.ShootCooldown > 0, "player shoot_cooldown must be positive"},
		{c.Player.ProjectileSpeed > 0, "player projectile_speed must be positive"},
		{c.Enemy.Width > 0 && c.Enemy.Height > 0, "enemy size must be positive"},
		{c.Enemy.Width <= c.Arena.Width && c.Enemy.Height <= c.Arena.Height/2, "enemy must fit in top half of arena"},
		{c.Enemy.WanderInterval > 0, "enemy wander_interval must be positive"},
		{c.Enemy.IntroSeconds >= 0 && c.Enemy.HitFlashSeconds >= 0, "enemy cue durations must not be negative"},
		{c.Enemy.Variants > 0, "enemy variants must be positive"},
		{c.Projectile.Width > 0 && c.Projectile.Height > 0, "projectile size must be positive"},
		{c.Spawner.IntervalSeconds > 0, "spawner interval_seconds must be positive"},
		{c.Spawner.MaxEnemies > 0, "spawner max_enemies must be positive"},
		{c.PowerUps.Width > 0 && c.PowerUps.Height > 0, "powerup size must be positive"},
		{c.PowerUps.Speed > 0, "powerup speed must be positive"},
		{c.Combat.ContactDamage >= 0 && c.Combat.PlayerProjectileDamage >= 0 && c.Combat.EnemyProjectileDamage >= 0, "combat damage must not be negative"},
		{c.Difficulty.InitialTier >= 1, "difficulty initial_tier must be at least 1"},
		{c.Difficulty.IntervalSeconds > 0, "difficulty interval_seconds must be positive"},
		{c.Difficulty.Curve.MinCooldown > 0, "difficulty curve min_cooldown must be positive"},
	}

	for _, ch := range checks {
		if !ch.ok {
			return fmt.Errorf("config: %s: %w", ch.what, ErrInvalidConfig)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialTierForPreset returns the starting tier for a difficulty preset.
func InitialTierForPreset(preset DifficultyPreset) int {
	if preset == DifficultyHard {
		return 3
	}
	return 1
}

