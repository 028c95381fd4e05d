package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// drawWeighted picks one item with probability proportional to its weight,
// identical in distribution to expanding each item weight times and drawing
// uniformly. Items with non-positive weight cannot be drawn.
func drawWeighted[T any](rng *rand.Rand, items []T, weight func(T) int) (T, bool) {
	var zero T

	total := 0
	for _, item := range items {
		if w := weight(item); w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return zero, false
	}

	roll := rng.IntN(total)
	cumulative := 0
	for _, item := range items {
		w := weight(item)
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return item, true
		}
	}

	return zero, false
}
