package window

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// RandomSource returns values in [0, 1).
type RandomSource func() float64

// Shuffle returns a new slice holding items in a random order using a
// Fisher-Yates pass from the last index down to 1. items is not modified.
func Shuffle[T any](items []T, random RandomSource) []T {
	ret := make([]T, len(items))
	copy(ret, items)
	for i := len(ret) - 1; i > 0; i-- {
		j := pick(random(), i)
		ret[i], ret[j] = ret[j], ret[i]
	}
	return ret
}

// pick maps r to an index in [0, i], guarding against sources that step
// outside [0, 1).
func pick(r float64, i int) int {
	if !(r > 0) {
		return 0
	}
	j := int(r * float64(i+1))
	return min(j, i)
}

// NewSeededSource returns a deterministic source. It is not safe for
// concurrent use; create one per caller.
func NewSeededSource(seed uint64) RandomSource {
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return rnd.Float64
}

// SessionSeed gives a stable seed for a session id so the same visitor sees
// the same randomized order.
func SessionSeed(sessionId string) uint64 {
	return xxhash.Sum64String(sessionId)
}
