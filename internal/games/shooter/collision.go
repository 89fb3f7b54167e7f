package shooter

// Damage holds the fixed amounts applied by collision resolution.
type Damage struct {
	Contact          int
	PlayerProjectile int
	EnemyProjectile  int
}

// DefaultDamage is the reference balance: every hit costs 10.
var DefaultDamage = Damage{Contact: 10, PlayerProjectile: 10, EnemyProjectile: 10}

// resolveEnemyCollisions applies one enemy's interactions with the player.
// Contact is checked first and kills the enemy outright while the player only
// takes contact damage. Each projectile resolves at most one hit and is removed
// from its owner's collection once this pass finishes.
func resolveEnemyCollisions(e *Enemy, p *Player, dmg Damage) {
	if e.Box().Overlaps(p.Box()) {
		p.TakeDamage(dmg.Contact)
		e.kill()
	}

	var hit map[*Projectile]struct{}
	for _, pr := range p.Projectiles() {
		if !e.Box().Overlaps(pr.Box()) {
			continue
		}
		e.TakeDamage(dmg.PlayerProjectile)
		if hit == nil {
			hit = make(map[*Projectile]struct{})
		}
		hit[pr] = struct{}{}
	}
	p.removeProjectiles(hit)

	hit = nil
	for _, qr := range e.Projectiles() {
		if !p.Box().Overlaps(qr.Box()) {
			continue
		}
		p.TakeDamage(dmg.EnemyProjectile)
		if hit == nil {
			hit = make(map[*Projectile]struct{})
		}
		hit[qr] = struct{}{}
	}
	e.removeProjectiles(hit)
}
