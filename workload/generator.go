// Package workload generates, persists and replays interval
// insert/remove operation sequences against an islist.List, for
// benchmarking and fuzzing.
package workload

// OpKind distinguishes the two operations a workload can contain.
type OpKind uint8

const (
	OpInsert OpKind = iota
	OpRemove
)

// Op is one generated operation. Start/End are meaningless for
// OpRemove.
type Op struct {
	Kind   OpKind
	Marker int64
	Start  int64
	End    int64
}

// Generator produces a reproducible sequence of interval insert/remove
// operations over [domainMin, domainMax), from a seeded *rand.Rand.
type Generator struct {
	rng        randSource
	domainMin  int64
	domainMax  int64
	removeProb float64
	nextMarker int64
	live       []int64
}

// randSource is the subset of *rand.Rand a Generator needs; declared
// so tests can substitute a deterministic stub if ever needed.
type randSource interface {
	Float64() float64
	Int63n(n int64) int64
}

// NewGenerator builds a Generator over [domainMin, domainMax) with the
// given per-step probability of emitting a remove instead of an
// insert (when any marker is currently live).
func NewGenerator(rng randSource, domainMin, domainMax int64, removeProb float64) *Generator {
	return &Generator{
		rng:        rng,
		domainMin:  domainMin,
		domainMax:  domainMax,
		removeProb: removeProb,
	}
}

// Generate produces n operations, tracking which markers are live so
// it never emits a remove for a marker it hasn't inserted (or has
// already removed).
func (g *Generator) Generate(n int) []Op {
	ops := make([]Op, 0, n)
	for i := 0; i < n; i++ {
		if len(g.live) > 0 && g.rng.Float64() < g.removeProb {
			idx := g.rng.Int63n(int64(len(g.live)))
			marker := g.live[idx]
			g.live = append(g.live[:idx], g.live[idx+1:]...)
			ops = append(ops, Op{Kind: OpRemove, Marker: marker})
			continue
		}

		span := g.domainMax - g.domainMin
		start := g.domainMin + 1 + g.rng.Int63n(span-2)
		end := start + g.rng.Int63n(g.domainMax-1-start)
		marker := g.nextMarker
		g.nextMarker++
		g.live = append(g.live, marker)
		ops = append(ops, Op{Kind: OpInsert, Marker: marker, Start: start, End: end})
	}
	return ops
}
