package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestContactKillsEnemyAndHurtsPlayer(t *testing.T) {
	p := newTestPlayer(t, core.V(100, 100))
	e := newTestEnemy(t, enemyParams(core.V(120, 120)))

	resolveEnemyCollisions(e, p, DefaultDamage)

	assert.Equal(t, 90, p.Health())
	assert.Equal(t, 0, e.Health())
	assert.True(t, e.IsDestroyed())
	assert.False(t, e.JustHit(), "contact kill bypasses the hit cue")
}

func TestEdgeContactIsNotCollision(t *testing.T) {
	p := newTestPlayer(t, core.V(100, 100))
	e := newTestEnemy(t, enemyParams(core.V(148, 100)))

	resolveEnemyCollisions(e, p, DefaultDamage)

	assert.Equal(t, 100, p.Health())
	assert.False(t, e.IsDestroyed())
}

func TestPlayerProjectileConsumedOnHit(t *testing.T) {
	p := newTestPlayer(t, core.V(100, 350))
	e := newTestEnemy(t, enemyParams(core.V(100, 50)))

	hit := &Projectile{Pos: core.V(110, 60), Size: core.V(8, 16), Speed: 5, Damage: 10, Friendly: true}
	miss := &Projectile{Pos: core.V(400, 60), Size: core.V(8, 16), Speed: 5, Damage: 10, Friendly: true}
	p.projectiles = []*Projectile{hit, miss}

	resolveEnemyCollisions(e, p, DefaultDamage)

	assert.Equal(t, 100, e.Health())
	assert.True(t, e.JustHit())
	require.Len(t, p.Projectiles(), 1)
	assert.Same(t, miss, p.Projectiles()[0])
}

func TestEveryOverlappingProjectileHits(t *testing.T) {
	p := newTestPlayer(t, core.V(100, 350))
	e := newTestEnemy(t, enemyParams(core.V(100, 50)))

	for i := range 3 {
		p.projectiles = append(p.projectiles, &Projectile{
			Pos: core.V(100+float64(i)*10, 60), Size: core.V(8, 16), Friendly: true,
		})
	}

	resolveEnemyCollisions(e, p, DefaultDamage)

	assert.Equal(t, 80, e.Health(), "adjacent hits are all applied, none skipped")
	assert.Empty(t, p.Projectiles())
}

func TestEnemyProjectileHitsPlayer(t *testing.T) {
	p := newTestPlayer(t, core.V(100, 350))
	e := newTestEnemy(t, enemyParams(core.V(100, 50)))

	shot := &Projectile{Pos: core.V(110, 360), Size: core.V(8, 16), Speed: 2, Damage: 2}
	e.projectiles = []*Projectile{shot}

	resolveEnemyCollisions(e, p, DefaultDamage)

	assert.Equal(t, 90, p.Health(), "hit uses the fixed projectile damage")
	assert.Empty(t, e.Projectiles())
}

func TestProjectileResolvesOnlyOnce(t *testing.T) {
	p := newTestPlayer(t, core.V(100, 350))
	a := newTestEnemy(t, enemyParams(core.V(100, 50)))
	b := newTestEnemy(t, enemyParams(core.V(110, 50)))

	p.projectiles = []*Projectile{{Pos: core.V(120, 60), Size: core.V(8, 16), Friendly: true}}

	resolveEnemyCollisions(a, p, DefaultDamage)
	resolveEnemyCollisions(b, p, DefaultDamage)

	assert.Equal(t, 100, a.Health())
	assert.Equal(t, 110, b.Health(), "consumed projectile cannot hit a second enemy")
}

func TestCustomDamage(t *testing.T) {
	p := newTestPlayer(t, core.V(100, 100))
	e := newTestEnemy(t, enemyParams(core.V(120, 120)))

	resolveEnemyCollisions(e, p, Damage{Contact: 25})

	assert.Equal(t, 75, p.Health())
	assert.True(t, e.IsDestroyed())
}
