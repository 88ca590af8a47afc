package sim

// Bullet tuning.
const (
	BulletRadius   = 1
	BulletSpeed    = 5.0
	BulletLifetime = 40
)

// Shockwave tuning.
const (
	ShockwaveRadius    = 10
	ShockwaveSpeed     = 10
	ShockwaveMaxRadius = 500
)

// Bullet is a short-lived projectile fired from the ship's nose.
type Bullet struct {
	Body
	ColorIndex int
}

// NewBullet creates a bullet at pos heading along angle.
func NewBullet(pos Point, angle, speed float64) Bullet {
	return Bullet{
		Body:       newBody(pos, Polar(speed, angle), BulletRadius),
		ColorIndex: White,
	}
}

// Expired reports whether the bullet has outlived its range.
func (b *Bullet) Expired() bool {
	return b.FramesAlive() > BulletLifetime
}

// Color returns the bullet color, fading with age.
func (b *Bullet) Color() Color {
	return PaletteColor(b.ColorIndex).Dim(float64(b.FramesAlive()) / 80)
}

// Shockwave is an expanding ring centered where it was fired. It destroys
// every rock it touches and is not consumed by hits.
type Shockwave struct {
	Body
	MaxRadius  int
	Speed      int
	ColorIndex int
}

// NewShockwave creates a shockwave at pos with the default radius and speed.
func NewShockwave(pos Point, colorIndex int) *Shockwave {
	return &Shockwave{
		Body:       newBody(pos, Velocity{}, ShockwaveRadius),
		MaxRadius:  ShockwaveMaxRadius,
		Speed:      ShockwaveSpeed,
		ColorIndex: colorIndex,
	}
}

// Fire places the shockwave at pos. The speed argument is accepted for
// symmetry with bullets but does not change the expansion speed.
func (s *Shockwave) Fire(pos Point, _ float64) {
	s.Pos = pos
}

// Advance grows the ring by its speed.
func (s *Shockwave) Advance() {
	if !s.Alive() {
		return
	}
	s.Body.Advance()
	s.Radius += s.Speed
}

// Spent reports whether the ring has grown past its maximum radius.
func (s *Shockwave) Spent() bool {
	return s.Radius > s.MaxRadius
}
