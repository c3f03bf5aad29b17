package game

import (
	"math"
	"math/rand/v2"
)

// Rand is the random source the model draws serve speeds from.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// uniform draws from [lo, hi). Rounding can land exactly on hi, which is
// pulled back inside the range.
func uniform(rnd Rand, lo, hi float64) float64 {
	v := lo + (hi-lo)*rnd.Float64()
	if v >= hi {
		v = math.Nextafter(hi, lo)
	}
	return v
}
