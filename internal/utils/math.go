package utils

import (
	"math/rand"
	randv2 "math/rand/v2"
	"sync"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// SeededRandomFloat returns a goroutine-safe source of floats in [0.0, 1.0)
// that repeats the same sequence for the same seed
func SeededRandomFloat(seed uint64) func() float64 {
	var mu sync.Mutex
	r := randv2.New(randv2.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // Reproducible game logic randomness
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return r.Float64()
	}
}
