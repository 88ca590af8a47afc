package sim

import "math"

// Drawing parameters.
const (
	TrailLength    = 400
	trailFade      = 10.0
	shockwaveRings = 20
	shockwaveFade  = 500.0
	hudSpacing     = 15
	MaxLifeGlyphs  = 20
)

var (
	shipColor  = Color{1, 0, 0}
	trailColor = Color{0, 0, 0.75}
	tipColor   = Color{0, 0.25, 1}

	hudMagenta = Color{1, 0, 1}
	hudGrey    = Color{0.7, 0.7, 0.7}
	hudWhite   = Color{1, 1, 1}
	hudAzure   = Color{0, 0.5, 1}
	hudCyan    = Color{0, 1, 1}
	hudGreen   = Color{0, 1, 0}
	hudRose    = Color{1, 0, 0.5}
	hudYellow  = Color{1, 1, 0}
)

// Draw renders every live entity and, while a ship is in play, the HUD.
// fps is shown in the HUD's first line.
func (s *Session) Draw(dst Surface, fps int) {
	for i := range s.stars {
		st := &s.stars[i]
		if st.Alive() {
			dst.Dot(st.Pos, st.Color())
		}
	}

	for i := range s.shooting {
		if s.shooting[i].Alive() {
			drawTrail(dst, &s.shooting[i])
		}
	}

	for i := range s.rocks {
		r := &s.rocks[i]
		if r.Alive() {
			dst.Rock(r.Kind, r.Pos, r.Rotation, r.Color())
		}
	}

	for i := range s.bullets {
		b := &s.bullets[i]
		if b.Alive() {
			dst.Dot(b.Pos, b.Color())
		}
	}

	if s.shockwave != nil && s.shockwave.Alive() {
		// The ring strobes through the palette every frame.
		c := PaletteColor(s.rng.Int(1, 13)).Dim(float64(s.shockwave.Radius) / shockwaveFade)
		for i := 0; i < shockwaveRings; i++ {
			dst.Circle(s.shockwave.Pos, float64(s.shockwave.Radius+i), c)
		}
	}

	if s.ship == nil {
		if s.GameOver() {
			dst.Text(Point{X: s.topLeft.X + 5, Y: s.topLeft.Y - 5}, "GAME OVER", hudWhite)
		}
		return
	}

	if s.ship.Alive() {
		dst.Ship(s.ship.Pos, s.ship.Rotation-90, shipColor, s.ship.Thrust)
	}
	s.drawHUD(dst, fps)
}

func drawTrail(dst Surface, r *Rock) {
	c := trailColor
	for i := 0; i < TrailLength; i++ {
		c = c.Dim(float64(i) / (TrailLength * trailFade))
		v := Polar(r.Vel.Magnitude+float64(i), r.Vel.Angle)
		p := r.Pos.Add(-v.Dx(), -v.Dy())
		if i == 0 {
			dst.Dot(p, tipColor)
			continue
		}
		dst.Dot(p, c)
	}
}

func (s *Session) drawHUD(dst Surface, fps int) {
	ship := s.ship
	lines := []struct {
		n int
		c Color
	}{
		{fps, hudMagenta},
		{ship.FramesAlive() / 10, hudRose},
		{int(ship.Pos.X), hudAzure},
		{int(ship.Pos.Y), hudAzure},
		{int(ship.Vel.Angle) % 360, hudCyan},
		{int(ship.Vel.Magnitude * 100), hudCyan},
		{int(ship.Vel.Dx() * 100), hudGrey},
		{int(ship.Vel.Dy() * 100), hudGrey},
		{s.score, hudGreen},
		{int(s.hitRatio * 100), hudYellow},
	}

	at := Point{X: math.Trunc(s.topLeft.X + 5), Y: math.Trunc(s.topLeft.Y - 5)}
	for _, l := range lines {
		dst.Number(at, l.n, l.c)
		at.Y -= hudSpacing
	}

	glyphs := s.lives
	if glyphs > MaxLifeGlyphs {
		glyphs = MaxLifeGlyphs
	}
	for i := 0; i < glyphs; i++ {
		p := Point{X: s.max.X - 30 - float64(i*hudSpacing), Y: s.max.Y - 30}
		dst.Ship(p, 0, hudWhite, false)
	}
}
