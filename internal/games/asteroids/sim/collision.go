package sim

import "math"

// ClosestDistance returns the smallest distance between two bodies while
// both travel along their velocity for one frame. The path is sampled in
// unit steps of the larger per-frame displacement so fast bodies cannot
// pass through each other between frames.
func ClosestDistance(a, b *Body) float64 {
	adx, ady := a.Vel.Dx(), a.Vel.Dy()
	bdx, bdy := b.Vel.Dx(), b.Vel.Dy()

	dMax := math.Max(math.Abs(adx), math.Abs(ady))
	dMax = math.Max(dMax, math.Abs(bdx))
	dMax = math.Max(dMax, math.Abs(bdy))
	dMax = math.Max(dMax, 0.1)

	best := math.MaxFloat64
	for i := 0.0; i <= dMax; i++ {
		t := i / dMax
		x := (a.Pos.X + adx*t) - (b.Pos.X + bdx*t)
		y := (a.Pos.Y + ady*t) - (b.Pos.Y + bdy*t)
		best = math.Min(best, x*x+y*y)
	}
	return math.Sqrt(best)
}

// Collides reports whether two bodies touch during this frame.
// Touching at exactly the sum of radii counts as a hit.
func Collides(a, b *Body) bool {
	return ClosestDistance(a, b) <= float64(a.Radius+b.Radius)
}
