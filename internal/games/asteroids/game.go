// Package asteroids adapts the asteroids simulation to the platform: it
// loads configuration, maps input frames onto ship controls and draws the
// world onto a character screen.
package asteroids

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// ID is the registry and score-table identifier.
const ID = "asteroids"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives session events; nil disables event logging.
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// SetLogger sets the logger used for session events.
func SetLogger(l *log.Logger) {
	logger = l
}

// LoadConfig loads the configuration chosen on the command line with the
// difficulty preset applied.
func LoadConfig() (config.AsteroidsConfig, error) {
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	return cfg, nil
}

// NewSession builds a simulation from configuration.
func NewSession(cfg config.AsteroidsConfig, seed int64) *sim.Session {
	margin, border := cfg.World.Margin, cfg.World.StarBorder
	return sim.NewSession(sim.Options{
		TopLeft:     sim.Point{X: cfg.World.Left, Y: cfg.World.Top},
		BottomRight: sim.Point{X: cfg.World.Right, Y: cfg.World.Bottom},
		Margin:      &margin,
		StarBorder:  &border,
		Lives:       cfg.Session.Lives,
		Rand:        sim.NewRand(seed),
	})
}

// Controls converts a platform input frame into ship controls.
func Controls(in core.InputFrame) sim.ControlState {
	return sim.ControlState{
		RotateLeft:  in.Has(core.ActionRotateLeft),
		RotateRight: in.Has(core.ActionRotateRight),
		Thrust:      in.Has(core.ActionThrust),
		Brake:       in.Has(core.ActionBrake),
		Shoot:       in.Has(core.ActionFire),
		Rapid:       in.Has(core.ActionRapidFire),
		Shockwave:   in.Has(core.ActionSpecial),
		FPS:         in.FPS,
	}
}

// Game implements registry.Game for asteroids.
type Game struct {
	session *sim.Session
	cfg     config.AsteroidsConfig
	runtime core.RuntimeConfig
	seed    int64
	paused  bool
	fps     int
	log     *log.Logger

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new asteroids game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger

	cfg, err := LoadConfig()
	if err != nil {
		if g.log != nil {
			g.log.Warn("using default config", "err", err)
		}
		cfg = config.DefaultAsteroidsConfig()
		config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.minScreenW = 30
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.seed = runtime.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.session = NewSession(cfg, g.seed)
	g.paused = false
	g.fps = runtime.TickRate

	if g.log != nil {
		g.log.Debug("session started", "seed", g.seed, "lives", cfg.Session.Lives)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.session.GameOver() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.session.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.FPS > 0 {
		g.fps = in.FPS
	}
	g.session.Step(Controls(in))
	g.logEvents()

	return core.StepResult{State: g.State()}
}

func (g *Game) logEvents() {
	if g.log == nil {
		return
	}
	for _, e := range g.session.Events() {
		switch e.Kind {
		case sim.EventShipLost, sim.EventExtraLife, sim.EventShockwaveReady, sim.EventGameOver:
			g.log.Info(e.Kind.String(), "frame", e.Frame, "score", e.Score, "lives", e.Lives)
		case sim.EventRockDestroyed:
			g.log.Debug(e.Kind.String(), "rock", e.Rock, "score", e.Score)
		}
	}
}

// Render draws the current game state into the screen. The last row holds
// the status line.
func (g *Game) Render(dst *core.Screen) {
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Screen too small (min %dx%d)", g.minScreenW, g.minScreenH))
		return
	}

	topLeft, bottomRight := g.session.Bounds()
	surface := newScreenSurface(dst, topLeft, bottomRight, dst.Height()-1)
	g.session.Draw(surface, g.fps)

	g.renderStatus(dst, surface.hud)
	g.renderOverlay(dst)
}

// renderStatus writes lives, score and the HUD readouts on the bottom row.
func (g *Game) renderStatus(dst *core.Screen, hud []int) {
	y := dst.Height() - 1
	var sb strings.Builder
	fmt.Fprintf(&sb, "LIVES %d  SCORE %d  SHOTS %d", g.session.Lives(), g.session.Score(), g.session.Shots())
	if g.session.ShockwaveReady() {
		sb.WriteString("  [Z] SHOCKWAVE")
	}
	left := sb.String()
	dst.DrawColorText(0, y, left, core.ColorBrightWhite)

	var readout []string
	for i, n := range hud {
		if i >= len(hudLabels) || hudLabels[i] == "SCORE" {
			continue
		}
		readout = append(readout, fmt.Sprintf("%s %d", hudLabels[i], n))
	}
	right := strings.Join(readout, " ")
	if x := dst.Width() - len(right); x > len(left)+1 {
		dst.DrawColorText(x, y, right, core.ColorGray)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.session.GameOver():
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score())
		drawCenteredBox(dst, "GAME OVER", subtitle)
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Lives:    g.session.Lives(),
		Shots:    g.session.Shots(),
		HitRatio: g.session.HitRatio(),
		Frame:    g.session.Frame(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}

// Snapshot returns the simulation snapshot.
func (g *Game) Snapshot() sim.Snapshot {
	return g.session.Snapshot()
}

// Session exposes the simulation for front ends that draw it directly.
func (g *Game) Session() *sim.Session {
	return g.session
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
