package sim

import "math"

// Radius returns the collision radius of the kind.
func (k RockKind) Radius() int {
	if k < 0 || int(k) >= len(rockClasses) {
		return 0
	}
	return rockClasses[k].radius
}

// rockProfile is a lumpy unit outline shared by every rock.
var rockProfile = [...]float64{1, 0.85, 1, 0.9, 0.75, 1, 0.95, 0.8, 1, 0.9}

// shipHull and shipFlame are drawn pointing up, before rotation.
var (
	shipHull  = []Point{{X: 0, Y: 10}, {X: -6, Y: -6}, {X: 0, Y: -2}, {X: 6, Y: -6}}
	shipFlame = []Point{{X: -3, Y: -5}, {X: 0, Y: -12}, {X: 3, Y: -5}}
)

// RockOutline returns the closed outline of a rock of the given kind,
// scaled by its radius and turned by rotation degrees.
func RockOutline(kind RockKind, center Point, rotation int) []Point {
	radius := float64(kind.Radius())
	n := len(rockProfile)
	out := make([]Point, n)
	for i, k := range rockProfile {
		a := (float64(rotation) + float64(i)*360/float64(n)) * math.Pi / 180
		out[i] = Point{X: center.X + radius*k*math.Cos(a), Y: center.Y + radius*k*math.Sin(a)}
	}
	return out
}

// ShipOutline returns the hull for a ship drawn at the given drawing angle,
// which is the facing minus 90 degrees.
func ShipOutline(p Point, rotation float64) []Point {
	return place(shipHull, p, rotation)
}

// FlameOutline returns the thrust flame behind a ship.
func FlameOutline(p Point, rotation float64) []Point {
	return place(shipFlame, p, rotation)
}

func place(shape []Point, p Point, rotation float64) []Point {
	a := rotation * math.Pi / 180
	sin, cos := math.Sin(a), math.Cos(a)
	out := make([]Point, len(shape))
	for i, s := range shape {
		out[i] = Point{X: p.X + s.X*cos - s.Y*sin, Y: p.Y + s.X*sin + s.Y*cos}
	}
	return out
}
