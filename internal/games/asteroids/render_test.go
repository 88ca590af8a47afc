package asteroids

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

func newTestSurface(w, h int) (*core.Screen, *screenSurface) {
	screen := core.NewScreen(w, h)
	surf := newScreenSurface(screen, sim.Point{X: -200, Y: 200}, sim.Point{X: 200, Y: -200}, h)
	return screen, surf
}

func TestSurfaceProjectsCorners(t *testing.T) {
	screen, surf := newTestSurface(41, 21)
	white := sim.PaletteColor(sim.White)

	surf.Dot(sim.Point{X: -200, Y: 200}, white)
	surf.Dot(sim.Point{X: 200, Y: -200}, white)

	if screen.Get(0, 0) != BrightGlyph {
		t.Errorf("top-left cell = %q, expected %q", screen.Get(0, 0), BrightGlyph)
	}
	if screen.Get(40, 20) != BrightGlyph {
		t.Errorf("bottom-right cell = %q, expected %q", screen.Get(40, 20), BrightGlyph)
	}
	if got := screen.GetCell(0, 0).Hex; got != "#ffffff" {
		t.Errorf("dot color = %q, expected #ffffff", got)
	}
}

func TestSurfaceSkipsDarkAndOffscreen(t *testing.T) {
	screen, surf := newTestSurface(41, 21)

	surf.Dot(sim.Point{}, sim.PaletteColor(sim.White).Dim(0.95))
	surf.Dot(sim.Point{X: 300}, sim.PaletteColor(sim.White))

	if screen.String() != core.NewScreen(41, 21).String() {
		t.Error("expected nothing drawn")
	}
}

func TestSurfaceShipGlyph(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		expected rune
	}{
		{"east", -90, '→'},
		{"north", 0, '↑'},
		{"west", 90, '←'},
		{"south", 180, '↓'},
		{"north-east", -45, '↗'},
		{"wrapped", 270, '→'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen, surf := newTestSurface(41, 21)
			surf.Ship(sim.Point{}, tt.rotation, sim.PaletteColor(sim.Red), false)
			if got := screen.Get(20, 10); got != tt.expected {
				t.Errorf("ship glyph = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestSurfaceShipFlame(t *testing.T) {
	screen, surf := newTestSurface(41, 21)

	surf.Ship(sim.Point{}, -90, sim.PaletteColor(sim.Red), true)

	if screen.Get(19, 10) != FlameGlyph {
		t.Errorf("flame cell = %q, expected %q behind the ship", screen.Get(19, 10), FlameGlyph)
	}
}

func TestSurfaceRockOutline(t *testing.T) {
	screen, surf := newTestSurface(81, 41)

	surf.Rock(sim.RockLarge, sim.Point{}, 0, sim.PaletteColor(sim.Yellow))

	// Radius 16 at 0.2 cells per unit puts the east edge about 3 cells out.
	if screen.Get(43, 20) != '#' {
		t.Errorf("east edge = %q, expected '#'", screen.Get(43, 20))
	}
	if screen.Get(40, 20) != ' ' {
		t.Error("rock outline should leave the center empty")
	}
}

func TestSurfaceTinyRock(t *testing.T) {
	screen, surf := newTestSurface(21, 11)

	surf.Rock(sim.RockSmall, sim.Point{}, 0, sim.PaletteColor(sim.Red))

	if screen.Get(10, 5) != 'o' {
		t.Errorf("center = %q, expected a single 'o'", screen.Get(10, 5))
	}
}

func TestSurfaceCollectsHUD(t *testing.T) {
	_, surf := newTestSurface(41, 21)

	surf.Number(sim.Point{}, 7, sim.Color{})
	surf.Number(sim.Point{}, -3, sim.Color{})

	if len(surf.hud) != 2 || surf.hud[0] != 7 || surf.hud[1] != -3 {
		t.Errorf("hud = %v, expected [7 -3]", surf.hud)
	}
}

func TestSurfaceKeepsFadedShades(t *testing.T) {
	screen, surf := newTestSurface(41, 21)

	surf.Dot(sim.Point{X: -200, Y: 200}, sim.PaletteColor(sim.White).Dim(0.25))
	surf.Dot(sim.Point{X: 200, Y: -200}, sim.PaletteColor(sim.White).Dim(0.5))

	first, second := screen.GetCell(0, 0).Hex, screen.GetCell(40, 20).Hex
	if first == "" || second == "" {
		t.Fatalf("faded dots lost their color: %q, %q", first, second)
	}
	if first == second {
		t.Errorf("two fade levels share the shade %q", first)
	}
	if first != "#bfbfbf" {
		t.Errorf("quarter-faded white = %q, expected #bfbfbf", first)
	}
}

func TestSurfaceFlameIsOrange(t *testing.T) {
	screen, surf := newTestSurface(41, 21)

	surf.Ship(sim.Point{}, -90, sim.PaletteColor(sim.Red), true)

	if got := screen.GetCell(19, 10).Hex; got != "#ff8000" {
		t.Errorf("flame color = %q, expected #ff8000", got)
	}
	if got := screen.GetCell(20, 10).Hex; got != "#ff0000" {
		t.Errorf("ship color = %q, expected #ff0000", got)
	}
}
