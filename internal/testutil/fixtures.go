package testutil

import "math/rand/v2"

// DeterministicNoise returns length samples drawn uniformly from
// [-amplitude, amplitude) with a fixed seed.
func DeterministicNoise(seed uint64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns 0, 1, ..., n-1.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Impulse returns a row-major grid of the given shape with a single 1 at
// flat index pos. Positions outside the grid leave it all zero.
func Impulse(pos int, shape ...int) []float64 {
	out := make([]float64, gridSize(shape))
	if pos >= 0 && pos < len(out) {
		out[pos] = 1
	}
	return out
}

// Constant returns n copies of v.
func Constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Ones returns n copies of 1.
func Ones(n int) []float64 { return Constant(1, n) }

func gridSize(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}
