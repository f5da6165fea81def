package islist

// edgeLoc identifies a single (node, level) edge. Keyed on node
// identity rather than index so it works regardless of whether K is
// itself comparable.
type edgeLoc[K any, M comparable] struct {
	n     *node[K, M]
	level int
}

// VerifyMarkerInvariant checks, for every stored marker, that its
// stamps are present on exactly the edges of its maximal stair-step
// path, no more and no less. It exists as a diagnostic for tests and
// fuzzing, not for use on any hot path - it rebuilds the full
// marker-to-edge map by scanning the tower.
func (l *List[K, M]) VerifyMarkerInvariant() error {
	actual := map[M]map[edgeLoc[K, M]]bool{}
	for n := l.head; n != l.tail; n = n.next[0] {
		for level := 0; level < n.height; level++ {
			for _, m := range n.markers[level].items {
				if actual[m] == nil {
					actual[m] = map[edgeLoc[K, M]]bool{}
				}
				actual[m][edgeLoc[K, M]{n: n, level: level}] = true
			}
		}
	}

	for m, iv := range l.dir.snapshot() {
		startNode := l.findClosestNode(iv.start, nil)
		endNode := l.findClosestNode(iv.end, nil)
		if startNode == l.tail || l.cmp(startNode.index, iv.start) != 0 {
			return invariantf("marker %v: start node %v missing from tower", m, iv.start)
		}
		if endNode == l.tail || l.cmp(endNode.index, iv.end) != 0 {
			return invariantf("marker %v: end node %v missing from tower", m, iv.end)
		}
		if !startNode.starting.has(m) {
			return invariantf("marker %v: absent from its start node's starting set", m)
		}
		if !startNode.endpoint.has(m) {
			return invariantf("marker %v: absent from its start node's endpoint set", m)
		}
		if !endNode.ending.has(m) {
			return invariantf("marker %v: absent from its end node's ending set", m)
		}
		if !endNode.endpoint.has(m) {
			return invariantf("marker %v: absent from its end node's endpoint set", m)
		}

		expected := map[edgeLoc[K, M]]bool{}
		l.walkPath(startNode, endNode, func(n *node[K, M], level int) {
			expected[edgeLoc[K, M]{n: n, level: level}] = true
		})

		got := actual[m]
		for loc := range expected {
			if !got[loc] {
				return invariantf("marker %v: missing stamp at index %v level %d", m, loc.n.index, loc.level)
			}
		}
		for loc := range got {
			if !expected[loc] {
				return invariantf("marker %v: stray stamp at index %v level %d", m, loc.n.index, loc.level)
			}
		}
	}
	return nil
}
