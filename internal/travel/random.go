package travel

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// NewRand returns a deterministic generator for seed. Route selection is a
// game mechanic, so a non-cryptographic PRNG is what we want here.
// #nosec G404
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(seedWord(seed, "route"), seedWord(seed, "landmark")))
}

// NewClockRand seeds from the wall clock, for production journeys.
func NewClockRand() *rand.Rand {
	return NewRand(time.Now().UnixNano())
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
