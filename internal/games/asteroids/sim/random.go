package sim

import "math/rand"

// Rand is the uniform random source used for placement, headings and
// shockwave colors. Both ranges are half-open: [min, max).
type Rand interface {
	Float(min, max float64) float64
	Int(min, max int) int
}

type seededRand struct {
	r *rand.Rand
}

// NewRand returns a Rand backed by math/rand seeded with seed.
func NewRand(seed int64) Rand {
	return &seededRand{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRand) Float(min, max float64) float64 {
	return min + s.r.Float64()*(max-min)
}

func (s *seededRand) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min)
}
