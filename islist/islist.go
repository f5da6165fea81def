// Package islist implements the interval skip list: a probabilistic,
// skip-list-based container that maps markers to [start, end] index
// ranges and answers stabbing and range queries in expected
// logarithmic time without a per-interval scan.
package islist

import "math/rand"

// List is an interval skip list over index type K and marker type M.
// The zero value is not usable; construct one with New, NewWithSeed or
// NewWithComparator.
type List[K any, M comparable] struct {
	cmp      Comparator[K]
	minIndex K
	maxIndex K
	p        float64

	head *node[K, M]
	tail *node[K, M]
	dir  *directory[K, M]
	rng  *rand.Rand
}

// New builds an empty list over an ordered key type, using natural
// ordering and a PRNG seeded from math/rand's global source. minIndex and maxIndex bound every
// interval ever inserted: every interval must satisfy minIndex < start
// <= end < maxIndex.
func New[K Ordered, M comparable](minIndex, maxIndex K) *List[K, M] {
	return NewWithComparator[K, M](OrderedComparator[K](), minIndex, maxIndex, rand.Int63())
}

// NewWithSeed is New with an explicit PRNG seed, for reproducible
// height assignment in tests and benchmarks.
func NewWithSeed[K Ordered, M comparable](minIndex, maxIndex K, seed int64) *List[K, M] {
	return NewWithComparator[K, M](OrderedComparator[K](), minIndex, maxIndex, seed)
}

// NewWithComparator builds a list over a key type with no natural
// ordering, e.g. a struct compared lexicographically by its fields.
func NewWithComparator[K any, M comparable](cmp Comparator[K], minIndex, maxIndex K, seed int64) *List[K, M] {
	l := &List[K, M]{
		cmp:      cmp,
		minIndex: minIndex,
		maxIndex: maxIndex,
		p:        promoteProb,
		dir:      newDirectory[K, M](),
		rng:      rand.New(rand.NewSource(seed)),
	}
	l.Clear()
	return l
}

// SetPromoteProb overrides the per-level promotion probability used by
// subsequent inserts, in place of the default promoteProb. p must be in
// (0, 1]; p = 1 gives every new node the maximum height, values near 1
// grow taller towers and use more memory per
// marker, values near 0 degrade query cost toward a plain linked list.
// Existing nodes keep whatever height they were built with - only
// later insertNode calls see the new value.
func (l *List[K, M]) SetPromoteProb(p float64) {
	l.p = p
}

// Clear empties the list back to two bare sentinels, dropping every
// marker and node.
func (l *List[K, M]) Clear() {
	head := newNode[K, M](l.minIndex, maxHeight)
	tail := newNode[K, M](l.maxIndex, maxHeight)
	for i := 0; i < maxHeight; i++ {
		head.next[i] = tail
	}
	l.head = head
	l.tail = tail
	l.dir.clear()
}

// Len reports the number of markers currently stored.
func (l *List[K, M]) Len() int {
	return l.dir.size()
}

// findClosestNode is section 4.1: descend from the top level,
// advancing at each level while the next node's index is strictly
// less than index, recording the last node visited at each level into
// update (if non-nil). Returns the first node whose index is >= index.
func (l *List[K, M]) findClosestNode(index K, update []*node[K, M]) *node[K, M] {
	cur := l.head
	for level := maxHeight - 1; level >= 0; level-- {
		for cur.next[level] != l.tail && l.cmp(cur.next[level].index, index) < 0 {
			cur = cur.next[level]
		}
		if update != nil {
			update[level] = cur
		}
	}
	return cur.next[0]
}

// insertNode finds or creates the node at index, returning it and
// whether it was freshly created.
func (l *List[K, M]) insertNode(index K) (*node[K, M], bool) {
	update := make([]*node[K, M], maxHeight)
	landing := l.findClosestNode(index, update)
	if landing != l.tail && l.cmp(landing.index, index) == 0 {
		return landing, false
	}

	height := randomHeight(l.rng, l.p, maxHeight)
	n := newNode[K, M](index, height)
	for i := 0; i < height; i++ {
		n.next[i] = update[i].next[i]
		update[i].next[i] = n
	}
	l.adjustMarkersOnInsert(n, update)
	return n, true
}

// removeNode unlinks the node at index from the tower. The caller must
// already have emptied its endpoint set; a node with markers still
// starting or ending at it is never removed.
func (l *List[K, M]) removeNode(index K) {
	update := make([]*node[K, M], maxHeight)
	landing := l.findClosestNode(index, update)
	if landing == l.tail || l.cmp(landing.index, index) != 0 {
		return
	}
	l.adjustMarkersOnRemove(landing, update)
	for i := 0; i < landing.height; i++ {
		update[i].next[i] = landing.next[i]
	}
}

// Insert adds a new marker covering [start, end]. start must be
// strictly greater than minIndex and end strictly less than maxIndex,
// and start <= end. marker must not already be present.
func (l *List[K, M]) Insert(marker M, start, end K) error {
	if l.dir.has(marker) {
		return invalidArgf("marker %v already present", marker)
	}
	if l.cmp(start, end) > 0 {
		return invalidArgf("start must not be after end")
	}
	if l.cmp(start, l.minIndex) <= 0 {
		return invalidArgf("start must be greater than the list minimum")
	}
	if l.cmp(end, l.maxIndex) >= 0 {
		return invalidArgf("end must be less than the list maximum")
	}

	startNode, _ := l.insertNode(start)
	endNode, _ := l.insertNode(end)

	startNode.starting.add(marker)
	startNode.endpoint.add(marker)
	endNode.ending.add(marker)
	endNode.endpoint.add(marker)
	l.stampPath(startNode, endNode, marker)

	l.dir.put(marker, interval[K]{start: start, end: end})
	return nil
}

// Remove deletes marker and unstamps every edge it was riding. Nodes
// left with no remaining endpoint markers are spliced out of the
// tower. Removing a marker that isn't present is a silent no-op.
func (l *List[K, M]) Remove(marker M) error {
	iv, ok := l.dir.get(marker)
	if !ok {
		return nil
	}

	update := make([]*node[K, M], maxHeight)
	startNode := l.findClosestNode(iv.start, update)
	endNode := l.findClosestNode(iv.end, update)

	l.unstampPath(startNode, endNode, marker)
	startNode.starting.remove(marker)
	startNode.endpoint.remove(marker)
	endNode.ending.remove(marker)
	endNode.endpoint.remove(marker)

	l.dir.delete(marker)

	if !endNode.hasEndpointMarkers() && endNode != l.head && endNode != l.tail {
		l.removeNode(endNode.index)
	}
	if startNode != endNode && !startNode.hasEndpointMarkers() && startNode != l.head && startNode != l.tail {
		l.removeNode(startNode.index)
	}
	return nil
}

// Update changes marker's interval to [start, end]. A partial in-place
// edit of the marker's existing stamps is not sufficient, since the
// maximal stair-step path generally changes shape entirely when either
// endpoint moves, so this is unconditionally Remove followed by Insert
// rather than a true in-place rewrite - Remove no-ops if marker isn't
// already present, so Update also works as a plain insert.
func (l *List[K, M]) Update(marker M, start, end K) error {
	if err := l.Remove(marker); err != nil {
		return err
	}
	return l.Insert(marker, start, end)
}

// IntervalByMarker returns the [start, end] a marker was inserted
// with, or false if it is not present.
func (l *List[K, M]) IntervalByMarker(marker M) (start, end K, ok bool) {
	iv, present := l.dir.get(marker)
	if !present {
		var zero K
		return zero, zero, false
	}
	return iv.start, iv.end, true
}

// Interval is a marker's [Start, End] range, as returned by the
// IntervalsByMarker view.
type Interval[K any] struct {
	Start K
	End   K
}

// IntervalsByMarker returns the whole marker -> interval mapping as a
// fresh snapshot; mutating the result has no effect on the list.
// Empty immediately after Clear.
func (l *List[K, M]) IntervalsByMarker() map[M]Interval[K] {
	snap := l.dir.snapshot()
	out := make(map[M]Interval[K], len(snap))
	for m, iv := range snap {
		out[m] = Interval[K]{Start: iv.start, End: iv.end}
	}
	return out
}
