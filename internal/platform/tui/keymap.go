package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// DefaultHoldTicks is how long a movement or fire key stays active after its last
// press event. Terminals report repeats but never key-up.
const DefaultHoldTicks = 12

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// heldActions are latched for a few ticks; everything else fires once.
var heldActions = map[core.Action]bool{
	core.ActionUp:    true,
	core.ActionDown:  true,
	core.ActionLeft:  true,
	core.ActionRight: true,
	core.ActionFire:  true,
}

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// InputLatch turns discrete key events into a per-tick held-key frame.
type InputLatch struct {
	hold    int
	tick    uint64
	expires map[core.Action]uint64
	once    core.InputFrame
}

// NewInputLatch creates a latch. hold <= 0 uses DefaultHoldTicks.
func NewInputLatch(hold int) *InputLatch {
	if hold <= 0 {
		hold = DefaultHoldTicks
	}
	return &InputLatch{
		hold:    hold,
		expires: make(map[core.Action]uint64),
		once:    core.NewInputFrame(),
	}
}

// Press records a key event for the current tick.
func (l *InputLatch) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !heldActions[a] {
		l.once.Set(a)
		return
	}
	// Reversing direction releases the other key immediately.
	if o, ok := opposite[a]; ok {
		delete(l.expires, o)
	}
	l.expires[a] = l.tick + uint64(l.hold)
}

// Frame returns the actions active this tick and advances the latch.
func (l *InputLatch) Frame() core.InputFrame {
	f := l.once.Clone()
	l.once.Clear()
	for a, until := range l.expires {
		if l.tick < until {
			f.Set(a)
		} else {
			delete(l.expires, a)
		}
	}
	l.tick++
	return f
}

// Release drops every latched action.
func (l *InputLatch) Release() {
	clear(l.expires)
	l.once.Clear()
}
