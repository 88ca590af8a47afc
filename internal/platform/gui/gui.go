// Package gui runs the simulation in a desktop window with ebiten.
package gui

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Game implements ebiten.Game around one simulation session.
type Game struct {
	cfg     config.AsteroidsConfig
	seed    int64
	session *sim.Session
	store   *storage.Store
	logger  *log.Logger
	paused  bool
	saved   bool
	width   int
	height  int
}

// NewGame creates a windowed game. The store may be nil.
func NewGame(cfg config.AsteroidsConfig, seed int64, store *storage.Store, logger *log.Logger) *Game {
	scale := cfg.Display.WindowScale
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		cfg:    cfg,
		seed:   seed,
		store:  store,
		logger: logger,
		width:  int(cfg.World.Right-cfg.World.Left) * scale,
		height: int(cfg.World.Top-cfg.World.Bottom) * scale,
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.session = asteroids.NewSession(g.cfg, g.seed)
	g.paused = false
	g.saved = false
	if g.logger != nil {
		g.logger.Debug("session started", "seed", g.seed)
	}
}

// Update advances the simulation by one frame.
func (g *Game) Update() error {
	if justPressed(ebiten.KeyQ, ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.session.GameOver() {
		if !g.saved {
			g.saveRun()
			g.saved = true
		}
		if justPressed(ebiten.KeyR) {
			g.seed++
			g.reset()
		}
	} else if justPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	if g.paused {
		return nil
	}
	g.session.Step(readControls())
	return nil
}

func (g *Game) saveRun() {
	if g.store == nil || g.session.Score() <= 0 {
		return
	}
	_, err := g.store.SaveRun(storage.Run{
		GameID:   asteroids.ID,
		Score:    g.session.Score(),
		Shots:    g.session.Shots(),
		HitRatio: g.session.HitRatio(),
		Frames:   g.session.Frame(),
		Player:   "gui",
	})
	if err != nil && g.logger != nil {
		g.logger.Warn("could not save run", "err", err)
	}
}

// Draw renders the session.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	topLeft, _ := g.session.Bounds()
	surface := &imageSurface{
		dst:   screen,
		left:  topLeft.X,
		top:   topLeft.Y,
		scale: float64(g.width) / (g.cfg.World.Right - g.cfg.World.Left),
	}
	g.session.Draw(surface, int(ebiten.ActualFPS()+0.5))

	if g.paused {
		surface.Text(sim.Point{X: -20, Y: 0}, "PAUSED", sim.PaletteColor(sim.White))
	}
}

// Layout keeps the world at a fixed pixel size and lets ebiten scale it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window and plays until it is closed.
func Run(cfg config.AsteroidsConfig, seed int64, store *storage.Store, logger *log.Logger) error {
	g := NewGame(cfg, seed, store, logger)

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Display.TickRate > 0 {
		ebiten.SetTPS(cfg.Display.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
