package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"wasd d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight, false},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"pause", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"quit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestInputLatchHoldsMovement(t *testing.T) {
	l := NewInputLatch(3)
	l.Press(core.ActionLeft)

	for i := range 3 {
		if !l.Frame().Has(core.ActionLeft) {
			t.Fatalf("tick %d: expected Left to be held", i)
		}
	}
	if l.Frame().Has(core.ActionLeft) {
		t.Error("expected Left to expire after hold ticks")
	}
}

func TestInputLatchRepeatExtends(t *testing.T) {
	l := NewInputLatch(2)
	l.Press(core.ActionFire)
	l.Frame()
	l.Press(core.ActionFire) // key repeat
	l.Frame()
	if !l.Frame().Has(core.ActionFire) {
		t.Error("repeat should extend the hold")
	}
}

func TestInputLatchOppositeReleases(t *testing.T) {
	l := NewInputLatch(10)
	l.Press(core.ActionLeft)
	l.Frame()
	l.Press(core.ActionRight)

	f := l.Frame()
	if f.Has(core.ActionLeft) {
		t.Error("pressing Right should release Left")
	}
	if !f.Has(core.ActionRight) {
		t.Error("expected Right")
	}
}

func TestInputLatchOneShot(t *testing.T) {
	l := NewInputLatch(10)
	l.Press(core.ActionPause)

	if !l.Frame().Has(core.ActionPause) {
		t.Fatal("expected Pause on first frame")
	}
	if l.Frame().Has(core.ActionPause) {
		t.Error("Pause must fire only once")
	}
}

func TestInputLatchRelease(t *testing.T) {
	l := NewInputLatch(10)
	l.Press(core.ActionUp)
	l.Press(core.ActionRestart)
	l.Release()

	f := l.Frame()
	if f.Has(core.ActionUp) || f.Has(core.ActionRestart) {
		t.Error("Release should clear everything")
	}
}
