package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillBinary fills the buffer with 0/1 values, sampling 1 with the given
// chance. A chance of 0 leaves every cell 0; a chance of 1 sets every cell.
func FillBinary(r *rand.Rand, buf []uint8, chance float64) {
	for i := range buf {
		buf[i] = 0
		if r.Float64() < chance {
			buf[i] = 1
		}
	}
}
