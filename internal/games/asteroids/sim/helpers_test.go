package sim

import "math"

const epsilon = 1e-6

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// stubRand returns the same fraction of every range.
type stubRand struct {
	frac float64
}

func (r stubRand) Float(min, max float64) float64 {
	return min + (max-min)*r.frac
}

func (r stubRand) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(float64(max-min)*r.frac)
}

// newTestSession returns a session whose refill rocks all appear at
// (-100, -100) drifting upward, with the star field removed.
func newTestSession() *Session {
	s := NewSession(Options{Rand: stubRand{frac: 0.25}})
	s.shooting = nil
	s.stars = nil
	return s
}

// recordingSurface counts draw calls.
type recordingSurface struct {
	dots    int
	circles int
	ships   int
	rocks   int
	numbers []int
	inks    []Color
	texts   []string
}

func (r *recordingSurface) Dot(Point, Color) { r.dots++ }
func (r *recordingSurface) Circle(Point, float64, Color) { r.circles++ }
func (r *recordingSurface) Ship(Point, float64, Color, bool) { r.ships++ }
func (r *recordingSurface) Rock(RockKind, Point, int, Color) { r.rocks++ }
func (r *recordingSurface) Number(_ Point, n int, c Color) {
	r.numbers = append(r.numbers, n)
	r.inks = append(r.inks, c)
}
func (r *recordingSurface) Text(_ Point, s string, _ Color) { r.texts = append(r.texts, s) }
