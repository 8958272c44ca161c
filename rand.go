package crescendo

import "math/rand"

// Rand is the only source of randomness in a render.  Every draw goes
// through it, in the order documented on Assigner.Assign, so a seed fully
// determines the output.
type Rand struct {
	rand *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{rand: rand.New(rand.NewSource(seed))}
}

// Uniform returns a value in [lo, hi).
func (r *Rand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.rand.Float64()
}
