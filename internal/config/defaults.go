package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in shooter configuration.
// It mirrors defaults/shooter.yaml and is used when the embed cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 450,
		},
		Player: PlayerConfig{
			Width:           48,
			Height:          48,
			Speed:           5,
			Health:          100,
			ShootCooldown:   0.25,
			Damage:          10,
			ProjectileSpeed: 5,
			BottomMargin:    12,
		},
		Enemy: EnemyConfig{
			Width:           48,
			Height:          48,
			WanderInterval:  3,
			IntroSeconds:    0.5,
			HitFlashSeconds: 0.3,
			Variants:        3,
		},
		Projectile: ProjectileConfig{
			Width:  8,
			Height: 16,
		},
		Spawner: SpawnerConfig{
			IntervalSeconds: 2,
			MaxEnemies:      5,
		},
		PowerUps: PowerUpConfig{
			Width:          20,
			Height:         20,
			Speed:          3,
			RepairAmount:   30,
			ShootSpeedStep: 0.01,
			DamageStep:     1,
		},
		Combat: CombatConfig{
			ContactDamage:          10,
			PlayerProjectileDamage: 10,
			EnemyProjectileDamage:  10,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			InitialTier:     1,
			IntervalSeconds: 60,
			Curve: CurveConfig{
				BaseHealth:    100,
				HealthPerTier: 10,
				BaseSpeed:     1,
				SpeedPerTier:  0.1,
				BaseCooldown:  5,
				MinCooldown:   1,
			},
		},
	}
}
