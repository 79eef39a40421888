package core

// Rand is the source of randomness injected into simulators.
// *math/rand.Rand satisfies it; tests supply scripted sequences.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// RandRange returns a value in the inclusive range [lo, hi].
func RandRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// RandChoice returns one element of choices picked uniformly.
func RandChoice(r Rand, choices []float64) float64 {
	if len(choices) == 0 {
		return 0
	}
	return choices[r.Intn(len(choices))]
}
