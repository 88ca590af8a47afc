package gui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// lineWidth is the stroke width in pixels for outlines.
const lineWidth = 1.5

// hudFace draws HUD numbers and labels in their palette colors.
var hudFace = text.NewGoXFace(basicfont.Face7x13)

// imageSurface draws the world onto an ebiten image, scale pixels per
// world unit with Y flipped.
type imageSurface struct {
	dst   *ebiten.Image
	left  float64
	top   float64
	scale float64
}

func toRGBA(c sim.Color) color.RGBA {
	return c.RGBA8()
}

func (s *imageSurface) px(p sim.Point) (float32, float32) {
	return float32((p.X - s.left) * s.scale), float32((s.top - p.Y) * s.scale)
}

func (s *imageSurface) polygon(points []sim.Point, clr color.Color) {
	for i := range points {
		x0, y0 := s.px(points[i])
		x1, y1 := s.px(points[(i+1)%len(points)])
		vector.StrokeLine(s.dst, x0, y0, x1, y1, lineWidth, clr, true)
	}
}

func (s *imageSurface) Dot(p sim.Point, c sim.Color) {
	x, y := s.px(p)
	size := float32(s.scale)
	vector.DrawFilledRect(s.dst, x, y, size, size, toRGBA(c), false)
}

func (s *imageSurface) Circle(center sim.Point, radius float64, c sim.Color) {
	x, y := s.px(center)
	vector.StrokeCircle(s.dst, x, y, float32(radius*s.scale), lineWidth, toRGBA(c), true)
}

func (s *imageSurface) Ship(p sim.Point, rotation float64, c sim.Color, thrust bool) {
	s.polygon(sim.ShipOutline(p, rotation), toRGBA(c))
	if thrust {
		s.polygon(sim.FlameOutline(p, rotation), toRGBA(sim.PaletteColor(sim.Orange)))
	}
}

func (s *imageSurface) Rock(kind sim.RockKind, p sim.Point, rotation int, c sim.Color) {
	if kind.Radius()*int(s.scale) < 3 {
		x, y := s.px(p)
		vector.DrawFilledCircle(s.dst, x, y, float32(float64(kind.Radius())*s.scale), toRGBA(c), true)
		return
	}
	s.polygon(sim.RockOutline(kind, p, rotation), toRGBA(c))
}

func (s *imageSurface) print(topLeft sim.Point, str string, c sim.Color) {
	x, y := s.px(topLeft)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(toRGBA(c))
	text.Draw(s.dst, str, hudFace, op)
}

func (s *imageSurface) Number(topLeft sim.Point, n int, c sim.Color) {
	s.print(topLeft, strconv.Itoa(n), c)
}

func (s *imageSurface) Text(topLeft sim.Point, str string, c sim.Color) {
	s.print(topLeft, str, c)
}
