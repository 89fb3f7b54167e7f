package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}

func newTestShooter(t *testing.T) *shooter.Game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	if err := os.WriteFile(path, []byte("enemy:\n  intro_seconds: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return shooter.New(registry.Options{ConfigPath: path})
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// send feeds one message through the model and returns the updated value.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

type countingPublisher struct {
	frames [][]byte
}

func (p *countingPublisher) Publish(frame []byte) {
	p.frames = append(p.frames, frame)
}

func TestModelHeldKeyMovesPlayer(t *testing.T) {
	g := newTestShooter(t)
	m := NewModel(g, testRuntime, ModelOptions{HoldTicks: 5})
	m.Init()

	start := g.Player().Position()
	m = send(t, m, keyMsg("left"))
	for range 10 {
		m = send(t, m, TickMsg{})
	}

	// Five latched ticks at speed 5, then the key expires.
	if got := start.X - g.Player().Position().X; got != 25 {
		t.Errorf("expected the ship to move 25 units left, moved %v", got)
	}
}

func TestModelRecordsRunOnceOnGameOver(t *testing.T) {
	g := newTestShooter(t)
	store := newTestStore(t)
	m := NewModel(g, testRuntime, ModelOptions{Store: store})
	m.Init()

	for range 30 {
		m = send(t, m, TickMsg{})
	}
	g.Player().TakeDamage(100)
	for range 5 {
		m = send(t, m, TickMsg{})
	}

	runs, err := store.RecentRuns("shooter", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly one run, got %d", len(runs))
	}
	if runs[0].Difficulty != 1 || runs[0].Duration <= 0 {
		t.Errorf("unexpected run summary: %+v", runs[0])
	}

	blob, err := store.RunSnapshot(runs[0].ID)
	if err != nil {
		t.Fatalf("RunSnapshot() failed: %v", err)
	}
	snap, err := shooter.UnmarshalSnapshot(blob)
	if err != nil {
		t.Fatalf("UnmarshalSnapshot() failed: %v", err)
	}
	if snap.State != shooter.StateGameOver {
		t.Errorf("expected final snapshot in game over state, got %q", snap.State)
	}

	// Zero kills is not a high score.
	if scores, _ := store.TopScores("shooter", 10); len(scores) != 0 {
		t.Errorf("expected no score rows, got %d", len(scores))
	}

	// Restart and die again: a second run is recorded.
	m = send(t, m, keyMsg("r"))
	m = send(t, m, TickMsg{})
	if g.State().GameOver {
		t.Fatal("expected restart")
	}
	g.Player().TakeDamage(100)
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})

	runs, _ = store.RecentRuns("shooter", 10)
	if len(runs) != 2 {
		t.Errorf("expected two runs after restart, got %d", len(runs))
	}
}

func TestModelPublishesSnapshots(t *testing.T) {
	g := newTestShooter(t)
	pub := &countingPublisher{}
	m := NewModel(g, testRuntime, ModelOptions{Spectators: pub, PublishEvery: 4})
	m.Init()

	for range 12 {
		m = send(t, m, TickMsg{})
	}

	if len(pub.frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(pub.frames))
	}
	snap, err := shooter.UnmarshalSnapshot(pub.frames[2])
	if err != nil {
		t.Fatalf("UnmarshalSnapshot() failed: %v", err)
	}
	if snap.Tick != 12 {
		t.Errorf("expected tick 12 in last frame, got %d", snap.Tick)
	}
}

func TestModelBackOnlyWhenPausedOrOver(t *testing.T) {
	g := newTestShooter(t)
	m := NewModel(g, testRuntime, ModelOptions{Embedded: true})
	m.Init()

	m = send(t, m, TickMsg{})
	m = send(t, m, keyMsg("esc"))
	if m.BackToMenu() {
		t.Fatal("Back during play must be ignored")
	}

	m = send(t, m, keyMsg("p"))
	m = send(t, m, TickMsg{})
	m = send(t, m, keyMsg("esc"))
	if !m.BackToMenu() {
		t.Error("expected Back while paused to return to the menu")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(newTestShooter(t), testRuntime, ModelOptions{})
	m.Init()

	next, cmd := m.Update(keyMsg("q"))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("expected q to quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model renders nothing")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := newTestShooter(t)
	m := NewModel(g, testRuntime, ModelOptions{})
	m.Init()

	for range 60 {
		m = send(t, m, TickMsg{})
	}
	elapsed := g.ElapsedSeconds()

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.ElapsedSeconds() != elapsed {
		t.Error("resize must not reset the run")
	}
	if m.View() == "" {
		t.Error("expected a rendered view")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "HP")
	s.DrawTextColored(3, 0, "██", core.ColorGreen)

	out := RenderScreen(s)
	for _, want := range []string{"HP", "██"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in rendered output", want)
		}
	}
}

