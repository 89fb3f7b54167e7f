package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Publisher receives encoded snapshots, e.g. a spectator hub.
type Publisher interface {
	Publish(frame []byte)
}

// ModelOptions wires optional collaborators into a game model.
type ModelOptions struct {
	Store        *storage.Store // nil disables score and run history
	Spectators   Publisher      // nil disables the snapshot feed
	PublishEvery int            // ticks between snapshots, default 6
	HoldTicks    int            // key latch duration, default DefaultHoldTicks
	Logger       *log.Logger    // nil discards
	Embedded     bool           // Back returns to a parent menu instead of quitting
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	opts      ModelOptions
	log       *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	latch     *InputLatch
	gameState core.GameState
	ticks     uint64

	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.PublishEvery <= 0 {
		opts.PublishEvery = 6
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:      opts,
		log:       logger.WithPrefix("tui"),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		latch:     NewInputLatch(opts.HoldTicks),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when nothing is in motion
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if !m.opts.Embedded {
			return m, tea.Quit
		}
		return m, nil
	}

	m.latch.Press(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.latch.Frame())
	wasOver := m.gameState.GameOver
	m.gameState = result.State
	m.ticks++

	if m.gameState.GameOver && !m.runSaved {
		m.recordRun()
		m.runSaved = true
		m.latch.Release()
	}
	// A restart inside the game clears the flag for the next death.
	if wasOver && !m.gameState.GameOver {
		m.runSaved = false
	}

	if m.opts.Spectators != nil && m.ticks%uint64(m.opts.PublishEvery) == 0 {
		m.publish()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the score and, when supported, a run summary with its final snapshot.
func (m *Model) recordRun() {
	store := m.opts.Store
	if store == nil {
		return
	}
	if m.gameState.Score > 0 {
		if _, err := store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.log.Warn("score not saved", "game", m.game.ID(), "error", err)
		}
	}

	stats, ok := m.game.(registry.RunStats)
	if !ok {
		return
	}
	run := storage.Run{
		GameID:     m.game.ID(),
		Kills:      m.gameState.Score,
		Difficulty: stats.Difficulty(),
		Duration:   stats.ElapsedSeconds(),
	}
	if snap, ok := m.game.(registry.Snapshotter); ok {
		data, err := snap.EncodeSnapshot()
		if err != nil {
			m.log.Warn("snapshot encode failed", "error", err)
		}
		run.Snapshot = data
	}
	if _, err := store.SaveRun(run); err != nil {
		m.log.Warn("run not saved", "game", m.game.ID(), "error", err)
	}
}

func (m *Model) publish() {
	snap, ok := m.game.(registry.Snapshotter)
	if !ok {
		return
	}
	data, err := snap.EncodeSnapshot()
	if err != nil {
		m.log.Warn("snapshot encode failed", "error", err)
		return
	}
	m.opts.Spectators.Publish(data)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot not written", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
