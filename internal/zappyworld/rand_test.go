package zappyworld

import "math/rand"

func newDeterministicRNG() *rand.Rand {
	return rand.New(rand.NewSource(7))
}
