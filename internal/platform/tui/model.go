// Package tui provides the Bubble Tea front end: the game loop with held-key
// input, the menu, the high score table and the SSH server.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// TickMsg is sent to trigger a game simulation tick. Models ignore ticks
// scheduled by another generation.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

var tickGen atomic.Uint64

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}

// Options tunes a game model.
type Options struct {
	Player    string // Recorded with saved runs
	HoldTicks int    // See Latch
	CanGoBack bool   // Whether Esc returns to a menu
}

// fpsMeter counts ticks over one-second windows.
type fpsMeter struct {
	start time.Time
	ticks int
	fps   int
}

func (f *fpsMeter) tick(now time.Time) int {
	if f.start.IsZero() {
		f.start = now
	}
	f.ticks++
	if elapsed := now.Sub(f.start); elapsed >= time.Second {
		f.fps = int(float64(f.ticks)/elapsed.Seconds() + 0.5)
		f.start = now
		f.ticks = 0
	}
	return f.fps
}

// Model is the Bubble Tea model that runs a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	gen        uint64
	keys       *KeyMapper
	latch      *Latch
	meter      *fpsMeter
	help       help.Model
	showHelp   bool
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game. A zero seed
// lets the game pick a fresh one on every reset.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		opts:   opts,
		gen:    tickGen.Add(1),
		keys:   NewKeyMapper(),
		latch:  NewLatch(opts.HoldTicks),
		meter:  &fpsMeter{},
		help:   help.New(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.opts.CanGoBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
		}
		return m, nil
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	}

	m.latch.Press(action)
	return m, nil
}

// handleResize processes window resize events. The world is scaled to the
// screen, so a running session carries on at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.gameState.Frame == 0 {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	in := m.latch.Frame()
	in.FPS = m.meter.tick(now)

	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		m.scoreSaved = false
		m.latch.Release()
	}

	result := m.game.Step(in)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveRun records the finished run. Runs that scored nothing are skipped.
func (m Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Shots:    m.gameState.Shots,
		HitRatio: m.gameState.HitRatio,
		Frames:   m.gameState.Frame,
		Player:   m.opts.Player,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".asteroids", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.showHelp {
		m.help.ShowAll = true
		out += "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
	}
	return out
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
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
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
