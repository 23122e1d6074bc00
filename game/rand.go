package game

import "math/rand"

// Rand is the source of randomness used to place mines and to shuffle
// squares. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// drawMine reports whether a square holds a mine, with a 1 in probability chance
func drawMine(rng Rand, probability int) bool {
	return rng.Intn(probability) == 0
}
