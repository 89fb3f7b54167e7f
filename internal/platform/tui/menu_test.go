package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

func menuSend(m MenuModel, msg tea.Msg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuListsShooterModes(t *testing.T) {
	store := newTestStore(t)
	store.SaveScore("shooter", 17)

	m := NewMenuModel(store, testRuntime)

	ids := map[string]int{}
	for _, item := range m.items {
		ids[item.GameID] = item.HighScore
	}
	if high, ok := ids["shooter"]; !ok || high != 17 {
		t.Errorf("expected shooter with best 17, got %v", ids)
	}
	if _, ok := ids["shooter_survival"]; !ok {
		t.Error("expected survival mode in menu")
	}
}

func TestMenuDifficultyCycles(t *testing.T) {
	m := NewMenuModel(nil, testRuntime)
	if m.Difficulty() != "" {
		t.Fatalf("expected default difficulty, got %q", m.Difficulty())
	}

	m = menuSend(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("expected easy, got %q", m.Difficulty())
	}

	m = menuSend(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = menuSend(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("expected wrap to fixed, got %q", m.Difficulty())
	}
}

func TestMenuSelectResult(t *testing.T) {
	m := NewMenuModel(nil, testRuntime)
	m = menuSend(m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuSend(m, tea.KeyMsg{Type: tea.KeyRight})
	m = menuSend(m, tea.KeyMsg{Type: tea.KeyRight})
	m = menuSend(m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Result()
	if res.Quit || res.GameID != m.items[1].GameID {
		t.Errorf("unexpected result: %+v", res)
	}
	if res.Difficulty != config.DifficultyNormal {
		t.Errorf("expected normal, got %q", res.Difficulty)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuSend(NewMenuModel(nil, testRuntime), tea.KeyMsg{Type: tea.KeyTab})
	if !m.Result().WantsScoreboard {
		t.Error("expected Tab to open the scoreboard")
	}

	m = menuSend(NewMenuModel(nil, testRuntime), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.Result().Quit {
		t.Error("expected q to quit")
	}
}

func TestSessionFlow(t *testing.T) {
	store := newTestStore(t)
	s := NewSessionModel(store, testRuntime, SessionOptions{})

	step := func(msg tea.Msg) {
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	// Scoreboard and back
	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.board == nil {
		t.Fatal("expected scoreboard to open")
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.board != nil {
		t.Fatal("expected to return to the menu")
	}

	// Start a game, pause, back to menu
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.gameModel == nil {
		t.Fatal("expected a game to start")
	}
	step(TickMsg{})
	step(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	step(TickMsg{})
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.gameModel != nil {
		t.Fatal("expected back to menu after pause + esc")
	}
	if s.View() == "" {
		t.Error("expected menu view")
	}
}

func TestScoreboardToggleViews(t *testing.T) {
	store := newTestStore(t)
	store.SaveScore("shooter", 5)
	store.SaveRun(storage.Run{GameID: "shooter", Kills: 5, Difficulty: 2, Duration: 75})

	sb := NewScoreboardModel(store, 100, 30)
	if sb.view != viewScores || len(sb.rows) != 1 {
		t.Fatalf("expected one score row, got %d", len(sb.rows))
	}

	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	sb = next.(ScoreboardModel)
	if sb.view != viewRuns || len(sb.rows) != 1 {
		t.Fatalf("expected one run row, got %d", len(sb.rows))
	}
	if sb.rows[0][1] != "5" {
		t.Errorf("expected kills column 5, got %q", sb.rows[0][1])
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[float64]string{0: "0:00", 59.9: "0:59", 61: "1:01", 3600: "60:00"}
	for in, want := range tests {
		if got := formatDuration(in); got != want {
			t.Errorf("formatDuration(%v) = %q, want %q", in, got, want)
		}
	}
}
