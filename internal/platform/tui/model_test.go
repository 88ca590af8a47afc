package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// stubGame ends after a fixed number of steps and records its input.
type stubGame struct {
	endAfter int
	score    int
	steps    int
	resets   int
	inputs   []core.InputFrame
	state    core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.state = core.GameState{Lives: 1}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if in.Has(core.ActionRestart) && g.state.GameOver {
		g.Reset(core.RuntimeConfig{})
		return core.StepResult{State: g.state}
	}
	g.steps++
	g.state.Frame = uint64(g.steps)
	g.state.Score = g.score
	g.state.Shots = 4
	g.state.HitRatio = 0.5
	g.state.GameOver = g.steps >= g.endAfter
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func tick(m Model) Model {
	next, _ := m.Update(TickMsg{At: time.Now(), Gen: m.gen})
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func newTestModel(g *stubGame, store *storage.Store, opts Options) Model {
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 40}, opts)
	m.Init()
	return m
}

func TestModelKeysReachGame(t *testing.T) {
	g := &stubGame{endAfter: 100}
	m := newTestModel(g, nil, Options{HoldTicks: 2})

	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(m)
	m = tick(m)
	m = tick(m)

	if len(g.inputs) != 3 {
		t.Fatalf("steps = %d, expected 3", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionThrust) || !g.inputs[0].Has(core.ActionFire) {
		t.Error("first frame should thrust and fire")
	}
	if !g.inputs[1].Has(core.ActionThrust) || g.inputs[1].Has(core.ActionFire) {
		t.Error("second frame should keep thrust only")
	}
	if g.inputs[2].Has(core.ActionThrust) {
		t.Error("thrust should be released after the hold")
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	g := &stubGame{endAfter: 100}
	m := newTestModel(g, nil, Options{})

	next, cmd := m.Update(TickMsg{At: time.Now(), Gen: m.gen + 1000})
	m = next.(Model)

	if cmd != nil || len(g.inputs) != 0 {
		t.Error("a tick from another model should be dropped")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{endAfter: 2, score: 7}
	m := newTestModel(g, store, Options{Player: "pilot"})
	for i := 0; i < 5; i++ {
		m = tick(m)
	}

	runs, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved runs = %d, expected 1", len(runs))
	}
	r := runs[0]
	if r.Score != 7 || r.Shots != 4 || r.HitRatio != 0.5 || r.Player != "pilot" {
		t.Errorf("run = %+v, expected score 7, 4 shots, ratio 0.5, player pilot", r)
	}
}

func TestModelSkipsScorelessRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{endAfter: 1}
	m := newTestModel(g, store, Options{})
	m = tick(m)
	m = tick(m)

	if runs, _ := store.TopRuns("stub", 10); len(runs) != 0 {
		t.Errorf("saved runs = %d, expected 0", len(runs))
	}
}

func TestModelRestartSavesAgain(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{endAfter: 1, score: 3}
	m := newTestModel(g, store, Options{})
	m = tick(m)

	m = press(m, runeKey('r'))
	m = tick(m)
	if g.resets != 2 {
		t.Fatalf("resets = %d, expected 2", g.resets)
	}
	m = tick(m)

	if runs, _ := store.TopRuns("stub", 10); len(runs) != 2 {
		t.Errorf("saved runs = %d, expected one per game", len(runs))
	}
}

func TestModelRestartIgnoredWhilePlaying(t *testing.T) {
	g := &stubGame{endAfter: 100}
	m := newTestModel(g, nil, Options{})
	m = tick(m)

	m = press(m, runeKey('r'))
	m = tick(m)

	if g.inputs[1].Has(core.ActionRestart) {
		t.Error("restart should not reach a running game")
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &stubGame{endAfter: 1}

	m := newTestModel(g, nil, Options{})
	m = tick(m)
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back should be ignored without a menu")
	}

	m = newTestModel(g, nil, Options{CanGoBack: true})
	m = tick(m)
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back after game over should return to the menu")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&stubGame{endAfter: 100}, nil, Options{})

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)

	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&stubGame{endAfter: 100}, nil, Options{})

	if !strings.Contains(m.View(), "stub") {
		t.Error("view should contain the game's drawing")
	}

	m = press(m, runeKey('?'))
	if !strings.Contains(m.View(), "rotate left") {
		t.Error("help should list the key bindings")
	}
}

func TestFPSMeter(t *testing.T) {
	var f fpsMeter
	start := time.Unix(0, 0)

	for i := 0; i <= 40; i++ {
		f.tick(start.Add(time.Duration(i) * 25 * time.Millisecond))
	}

	if f.fps != 41 {
		t.Errorf("fps = %d, expected 41", f.fps)
	}
}
