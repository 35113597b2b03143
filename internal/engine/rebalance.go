package engine

import (
	"math/rand"

	"github.com/piwi3910/cutstock/internal/model"
)

// rebalanceSeed fixes the multi-pass search's random source so that two
// calls with identical inputs always explore the same candidate orderings
// and therefore return a bit-identical result.
const rebalanceSeed = 42

// rebalanceGenerations bounds the number of alternate piece orderings the
// multi-pass search explores per call.
const rebalanceGenerations = 20

// runMultiPass2D explores a fixed number of deterministically-shuffled
// piece orderings and returns the best result among them (by
// betterResult2D); it is nil only when no ordering is explored. Optimize2D only ever
// swaps in a multi-pass result when it strictly beats the single
// deterministic pass, so enabling MultiPass can never regress a result.
func runMultiPass2D(expanded []model.ExpandedPiece2D, stocks []model.Stock2D, originals []model.Piece2D, opts model.Options2D) *model.Result2D {
	rng := rand.New(rand.NewSource(rebalanceSeed))

	var best *model.Result2D
	base := make([]model.ExpandedPiece2D, len(expanded))
	copy(base, expanded)

	for g := 0; g < rebalanceGenerations; g++ {
		order := make([]model.ExpandedPiece2D, len(base))
		copy(order, base)
		shuffleWithinTiers(rng, order)

		candidate := runSinglePass2D(order, stocks, originals, opts)
		if best == nil || betterResult2D(candidate, *best) {
			c := candidate
			best = &c
		}
	}
	return best
}

// shuffleWithinTiers perturbs order with max(1, n/4) random swaps, each
// between a random position and another at most three positions away, so
// the search stays near the sorted seed ordering instead of wandering
// into clearly worse permutations. Area groups are not enforced.
func shuffleWithinTiers(rng *rand.Rand, pieces []model.ExpandedPiece2D) {
	n := len(pieces)
	if n < 2 {
		return
	}
	swaps := n / 4
	if swaps < 1 {
		swaps = 1
	}
	for i := 0; i < swaps; i++ {
		a := rng.Intn(n)
		window := 3
		lo := a - window
		if lo < 0 {
			lo = 0
		}
		hi := a + window
		if hi >= n {
			hi = n - 1
		}
		if hi == lo {
			continue
		}
		b := lo + rng.Intn(hi-lo+1)
		pieces[a], pieces[b] = pieces[b], pieces[a]
	}
}
