// Package sim contains the Asteroids simulation: entities, the per-frame
// pipeline, swept collision, splitting and the score/lives/shockwave gates.
// It performs no I/O; drawing, input and randomness are supplied through
// the Surface, Controls and Rand interfaces.
package sim

import "math"

// Point is a position in world space. Y grows upward.
type Point struct {
	X float64 `yaml:"x" msgpack:"x"`
	Y float64 `yaml:"y" msgpack:"y"`
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Velocity is stored in polar form. Rectangular components are derived.
type Velocity struct {
	Magnitude float64
	Angle     float64 // degrees
}

// Polar builds a velocity from magnitude and angle in degrees.
func Polar(magnitude, angle float64) Velocity {
	return Velocity{Magnitude: magnitude, Angle: angle}
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }

// Dx returns the horizontal component.
func (v Velocity) Dx() float64 {
	return v.Magnitude * math.Cos(deg2rad(v.Angle))
}

// Dy returns the vertical component.
func (v Velocity) Dy() float64 {
	return v.Magnitude * math.Sin(deg2rad(v.Angle))
}

// SetRectangular replaces the velocity with the given components.
// The resulting angle lies in (-180, 180].
func (v *Velocity) SetRectangular(dx, dy float64) {
	v.Magnitude = math.Hypot(dx, dy)
	v.Angle = rad2deg(math.Atan2(dy, dx))
}

// AddDx adds to the horizontal component, leaving the vertical one intact.
func (v *Velocity) AddDx(ddx float64) {
	v.SetRectangular(v.Dx()+ddx, v.Dy())
}

// AddDy adds to the vertical component, leaving the horizontal one intact.
func (v *Velocity) AddDy(ddy float64) {
	v.SetRectangular(v.Dx(), v.Dy()+ddy)
}

// SubDx subtracts from the horizontal component.
func (v *Velocity) SubDx(ddx float64) {
	v.SetRectangular(v.Dx()-ddx, v.Dy())
}

// SubDy subtracts from the vertical component.
func (v *Velocity) SubDy(ddy float64) {
	v.SetRectangular(v.Dx(), v.Dy()-ddy)
}

// AddMagnitude changes speed without touching the heading.
func (v *Velocity) AddMagnitude(dm float64) {
	v.Magnitude += dm
}

// SubMagnitude changes speed without touching the heading.
func (v *Velocity) SubMagnitude(dm float64) {
	v.Magnitude -= dm
}

// Plus returns the rectangular sum of two velocities.
func (v Velocity) Plus(o Velocity) Velocity {
	var r Velocity
	r.SetRectangular(v.Dx()+o.Dx(), v.Dy()+o.Dy())
	return r
}
