package config

import "math"

// EnemyStats are the derived construction parameters for one enemy tier.
type EnemyStats struct {
	Level         int
	Health        int
	Speed         float64
	ShootCooldown float64
}

// DifficultyCurve decides when the tier advances and what a tier means.
type DifficultyCurve struct {
	cfg DifficultyConfig
}

// NewDifficultyCurve creates a curve from config.
func NewDifficultyCurve(cfg DifficultyConfig) *DifficultyCurve {
	return &DifficultyCurve{cfg: cfg}
}

// SetEnabled enables or disables tier progression.
func (d *DifficultyCurve) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// InitialTier returns the starting tier, never below 1.
func (d *DifficultyCurve) InitialTier() int {
	if d.cfg.InitialTier < 1 {
		return 1
	}
	return d.cfg.InitialTier
}

// ShouldAdvance reports whether enough time has elapsed since the last increase.
func (d *DifficultyCurve) ShouldAdvance(sinceLast float64) bool {
	return d.cfg.Enabled && d.cfg.IntervalSeconds > 0 && sinceLast >= d.cfg.IntervalSeconds
}

// EnemyStats returns the enemy parameters for a tier.
func (d *DifficultyCurve) EnemyStats(tier int) EnemyStats {
	c := d.cfg.Curve
	t := float64(tier)
	return EnemyStats{
		Level:         tier,
		Health:        c.BaseHealth + c.HealthPerTier*tier,
		Speed:         c.BaseSpeed + c.SpeedPerTier*t,
		ShootCooldown: math.Max(c.MinCooldown, c.BaseCooldown-t),
	}
}
