package util

import (
	"math"
	"math/rand"
	"time"
)

// NewRand returns a rand.Rand seeded from the current time. Catalog
// generation is intentionally not reproducible across runs.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// RandomInt returns a random number between min and max (inclusive)
func RandomInt(r *rand.Rand, min, max int) int {
	return min + r.Intn(max-min+1)
}

// RoundTo rounds value to the given number of decimal places.
func RoundTo(value float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(value*shift) / shift
}
