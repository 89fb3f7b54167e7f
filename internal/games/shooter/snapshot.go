package shooter

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// EntitySnapshot is the read-only view of one entity for presenters.
type EntitySnapshot struct {
	X         float64 `msgpack:"x"`
	Y         float64 `msgpack:"y"`
	W         float64 `msgpack:"w"`
	H         float64 `msgpack:"h"`
	Friendly  bool    `msgpack:"f,omitempty"`
	Destroyed bool    `msgpack:"d,omitempty"`
	Health    int     `msgpack:"hp,omitempty"`
	Kind      string  `msgpack:"k,omitempty"` // Hull variant, pickup type or "spawning"
}

// Snapshot contains the visible session state for spectators and run history.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64           `msgpack:"tick"`
	Time       float64          `msgpack:"t"`
	ArenaW     float64          `msgpack:"aw"`
	ArenaH     float64          `msgpack:"ah"`
	State      string           `msgpack:"state"`
	Kills      int              `msgpack:"kills"`
	Difficulty int              `msgpack:"tier"`
	Damage     int              `msgpack:"dmg"`
	Cooldown   float64          `msgpack:"cd"`
	Player     EntitySnapshot   `msgpack:"player"`
	Enemies    []EntitySnapshot `msgpack:"enemies"`
	Shots      []EntitySnapshot `msgpack:"shots"`
	PowerUps   []EntitySnapshot `msgpack:"powerups"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.player == nil {
		return Snapshot{State: g.state}
	}
	now := g.clock.Now()

	s := Snapshot{
		Tick:       g.tickCount,
		Time:       now,
		ArenaW:     g.arena.W,
		ArenaH:     g.arena.H,
		State:      g.state,
		Kills:      g.spawner.KillCount(),
		Difficulty: g.spawner.Difficulty(),
		Damage:     g.player.Damage(),
		Cooldown:   g.player.Cooldown(),
		Player: EntitySnapshot{
			X: g.player.pos.X, Y: g.player.pos.Y,
			W: g.player.size.X, H: g.player.size.Y,
			Friendly:  true,
			Destroyed: g.player.IsDestroyed(),
			Health:    g.player.Health(),
		},
	}

	for _, p := range g.player.Projectiles() {
		s.Shots = append(s.Shots, projectileSnapshot(p))
	}
	for _, e := range g.spawner.Enemies() {
		kind := fmt.Sprintf("hull%d", e.Variant())
		if e.Spawning(now) {
			kind = "spawning"
		}
		s.Enemies = append(s.Enemies, EntitySnapshot{
			X: e.pos.X, Y: e.pos.Y,
			W: e.size.X, H: e.size.Y,
			Destroyed: e.IsDestroyed(),
			Health:    e.Health(),
			Kind:      kind,
		})
		for _, p := range e.Projectiles() {
			s.Shots = append(s.Shots, projectileSnapshot(p))
		}
	}
	for _, pu := range g.powerUps.PowerUps() {
		s.PowerUps = append(s.PowerUps, EntitySnapshot{
			X: pu.Pos.X, Y: pu.Pos.Y,
			W: pu.Size.X, H: pu.Size.Y,
			Kind: pu.Type.String(),
		})
	}
	return s
}

func projectileSnapshot(p *Projectile) EntitySnapshot {
	return EntitySnapshot{
		X: p.Pos.X, Y: p.Pos.Y,
		W: p.Size.X, H: p.Size.Y,
		Friendly: p.Friendly,
	}
}

// EncodeSnapshot serializes the current state with msgpack.
func (g *Game) EncodeSnapshot() ([]byte, error) {
	return MarshalSnapshot(g.Snapshot())
}

// MarshalSnapshot encodes a snapshot with msgpack.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	b, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("shooter: encode snapshot: %w", err)
	}
	return b, nil
}

// UnmarshalSnapshot decodes a msgpack snapshot.
func UnmarshalSnapshot(b []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(b, &s); err != nil {
		return Snapshot{}, fmt.Errorf("shooter: decode snapshot: %w", err)
	}
	return s, nil
}
