package islist

import "math/rand"

const (
	// maxHeight is the tallest tower any node (other than the
	// sentinels) may have.
	maxHeight = 8
	// promoteProb is the per-level coin-flip probability a node's
	// tower keeps climbing.
	promoteProb = 0.25
)

// randomHeight draws height(n) = 1 + G, G geometric with success
// probability p, clamped to h: a loop that climbs one level per
// successful coin flip.
func randomHeight(r *rand.Rand, p float64, h int) int {
	height := 1
	for height < h && r.Float64() < p {
		height++
	}
	return height
}
