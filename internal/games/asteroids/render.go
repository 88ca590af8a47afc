package asteroids

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// Glyphs used on the character screen.
const (
	StarGlyph      = '·'
	BrightGlyph    = '•'
	FlameGlyph     = '*'
	ShockwaveGlyph = '░'
)

// rockGlyphs draws each rock tier's outline.
var rockGlyphs = map[sim.RockKind]rune{
	sim.RockLarge:  '#',
	sim.RockMedium: '+',
	sim.RockSmall:  'o',
}

// shipGlyphs are indexed by facing octant, counter-clockwise from east.
var shipGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// minVisible drops colors too dark to show on a terminal.
const minVisible = 0.08

// hudLabels name the numbers the session reports, in draw order.
var hudLabels = []string{"FPS", "T", "X", "Y", "ANG", "SPD", "DX", "DY", "SCORE", "HIT%"}

// screenSurface draws the world onto a character screen. HUD numbers are
// collected and laid out as a status line instead of being placed in
// world space, where rows are too coarse to keep them apart.
type screenSurface struct {
	dst *core.Screen
	vp  core.Viewport
	hud []int
}

func newScreenSurface(dst *core.Screen, topLeft, bottomRight sim.Point, rows int) *screenSurface {
	return &screenSurface{
		dst: dst,
		vp: core.Viewport{
			Left:   topLeft.X,
			Top:    topLeft.Y,
			Right:  bottomRight.X,
			Bottom: bottomRight.Y,
			W:      dst.Width(),
			H:      rows,
		},
	}
}

// cell builds a screen cell carrying the world color as a hex foreground,
// so faded bullets and dim stars keep their shade.
func cell(r rune, c sim.Color) core.Cell {
	return core.Cell{Rune: r, Hex: colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()}
}

func bright(c sim.Color) float64 {
	return math.Max(c.R, math.Max(c.G, c.B))
}

func (s *screenSurface) set(cx, cy int, c core.Cell) {
	if s.vp.Visible(cx, cy) {
		s.dst.Put(cx, cy, c)
	}
}

func (s *screenSurface) Dot(p sim.Point, c sim.Color) {
	b := bright(c)
	if b < minVisible {
		return
	}
	glyph := StarGlyph
	if b > 0.7 {
		glyph = BrightGlyph
	}
	cx, cy := s.vp.Project(p.X, p.Y)
	s.set(cx, cy, cell(glyph, c))
}

func (s *screenSurface) Circle(center sim.Point, radius float64, c sim.Color) {
	if bright(c) < minVisible {
		return
	}
	sx, _ := s.vp.Scale()
	n := int(2 * math.Pi * radius * sx)
	if n < 16 {
		n = 16
	}
	ring := cell(ShockwaveGlyph, c)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		cx, cy := s.vp.Project(center.X+radius*math.Cos(a), center.Y+radius*math.Sin(a))
		s.set(cx, cy, ring)
	}
}

// Ship receives the drawing angle, which is the facing minus 90 degrees.
func (s *screenSurface) Ship(p sim.Point, rotation float64, c sim.Color, thrust bool) {
	facing := rotation + 90
	octant := int(math.Round(facing/45)) % 8
	if octant < 0 {
		octant += 8
	}
	cx, cy := s.vp.Project(p.X, p.Y)
	s.set(cx, cy, cell(shipGlyphs[octant], c))

	if thrust {
		back := sim.Polar(sim.ShipRadius, facing+180)
		fx, fy := s.vp.Project(p.X+back.Dx(), p.Y+back.Dy())
		if fx == cx && fy == cy {
			fx -= int(math.Round(math.Cos(back.Angle * math.Pi / 180)))
		}
		s.set(fx, fy, cell(FlameGlyph, sim.PaletteColor(sim.Orange)))
	}
}

func (s *screenSurface) Rock(kind sim.RockKind, p sim.Point, rotation int, c sim.Color) {
	glyph, ok := rockGlyphs[kind]
	if !ok {
		return
	}
	col := cell(glyph, c)
	radius := float64(kind.Radius())
	sx, sy := s.vp.Scale()

	cx, cy := s.vp.Project(p.X, p.Y)
	if radius*sx < 1 && radius*sy < 1 {
		s.set(cx, cy, col)
		return
	}

	outline := sim.RockOutline(kind, p, rotation)
	n := len(outline)
	px := make([]int, n)
	py := make([]int, n)
	for i, v := range outline {
		px[i], py[i] = s.vp.Project(v.X, v.Y)
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		s.line(px[i], py[i], px[j], py[j], col)
	}
}

func (s *screenSurface) line(x0, y0, x1, y1 int, c core.Cell) {
	// Screen.DrawLine clips to the whole screen; keep the status rows clean.
	if s.vp.Visible(x0, y0) && s.vp.Visible(x1, y1) {
		s.dst.DrawLine(x0, y0, x1, y1, c)
		return
	}
	s.set(x0, y0, c)
	s.set(x1, y1, c)
}

func (s *screenSurface) Number(_ sim.Point, n int, _ sim.Color) {
	s.hud = append(s.hud, n)
}

func (s *screenSurface) Text(topLeft sim.Point, text string, c sim.Color) {
	cx, cy := s.vp.Project(topLeft.X, topLeft.Y)
	for i, r := range []rune(text) {
		s.dst.Put(cx+i, cy, cell(r, c))
	}
}
