package islist

import "sort"

// FindContaining returns every marker whose interval covers every one
// of points: start <= p <= end for all p. With a single point this is
// a direct stabbing query. With more than one point, the points are
// sorted and the result is the intersection of findContaining(min) and
// findContaining(max) - correct because intervals are convex, so a
// marker covers every point between its smallest and largest iff it
// covers both ends. Calling with no points returns nil.
func (l *List[K, M]) FindContaining(points ...K) []M {
	switch len(points) {
	case 0:
		return nil
	case 1:
		return l.findContainingAt(points[0])
	}

	sorted := append([]K(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return l.cmp(sorted[i], sorted[j]) < 0 })

	atMax := map[M]struct{}{}
	for _, m := range l.findContainingAt(sorted[len(sorted)-1]) {
		atMax[m] = struct{}{}
	}

	var out []M
	for _, m := range l.findContainingAt(sorted[0]) {
		if _, ok := atMax[m]; ok {
			out = append(out, m)
		}
	}
	return out
}

// findContainingAt is the single-point stabbing query: every marker
// whose interval covers index. The tower descent collects every
// candidate whose maximal path crosses index, then a cheap filter
// against the directory keeps only the markers that genuinely cover
// it - this guards against boundary subtleties in the stair-step
// collection and costs nothing beyond the size of the candidate set.
func (l *List[K, M]) findContainingAt(index K) []M {
	seen := map[M]struct{}{}
	cur := l.head
	for level := maxHeight - 1; level >= 0; level-- {
		for cur.next[level] != l.tail && l.cmp(cur.next[level].index, index) <= 0 {
			for _, m := range cur.markers[level].items {
				seen[m] = struct{}{}
			}
			cur = cur.next[level]
		}
		// The edge (cur, level) now spans index: cur.index <= index <
		// cur.next[level].index, so every marker on it is a candidate.
		for _, m := range cur.markers[level].items {
			seen[m] = struct{}{}
		}
	}
	if cur != l.head && cur != l.tail && l.cmp(cur.index, index) == 0 {
		for _, m := range cur.endpoint.items {
			seen[m] = struct{}{}
		}
	}

	out := make([]M, 0, len(seen))
	for m := range seen {
		iv, ok := l.dir.get(m)
		if ok && l.cmp(iv.start, index) <= 0 && l.cmp(index, iv.end) <= 0 {
			out = append(out, m)
		}
	}
	return out
}

// FindIntersecting returns every marker whose interval overlaps
// [qStart, qEnd]: everything containing qStart, plus everything that
// starts inside the query range.
func (l *List[K, M]) FindIntersecting(qStart, qEnd K) []M {
	seen := map[M]struct{}{}
	for _, m := range l.FindContaining(qStart) {
		seen[m] = struct{}{}
	}

	cur := l.findClosestNode(qStart, nil)
	for cur != l.tail && l.cmp(cur.index, qEnd) <= 0 {
		for _, m := range cur.starting.items {
			seen[m] = struct{}{}
		}
		cur = cur.next[0]
	}

	out := make([]M, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	return out
}

// FindStartingAt returns every marker whose interval starts exactly at
// index.
func (l *List[K, M]) FindStartingAt(index K) []M {
	n := l.findClosestNode(index, nil)
	if n == l.tail || l.cmp(n.index, index) != 0 {
		return nil
	}
	return n.starting.toSlice()
}

// FindEndingAt returns every marker whose interval ends exactly at
// index.
func (l *List[K, M]) FindEndingAt(index K) []M {
	n := l.findClosestNode(index, nil)
	if n == l.tail || l.cmp(n.index, index) != 0 {
		return nil
	}
	return n.ending.toSlice()
}

// FindStartingIn returns every marker whose interval starts somewhere
// in [qStart, qEnd].
func (l *List[K, M]) FindStartingIn(qStart, qEnd K) []M {
	var out []M
	cur := l.findClosestNode(qStart, nil)
	for cur != l.tail && l.cmp(cur.index, qEnd) <= 0 {
		out = append(out, cur.starting.items...)
		cur = cur.next[0]
	}
	return out
}

// FindEndingIn returns every marker whose interval ends somewhere in
// [qStart, qEnd].
func (l *List[K, M]) FindEndingIn(qStart, qEnd K) []M {
	var out []M
	cur := l.findClosestNode(qStart, nil)
	for cur != l.tail && l.cmp(cur.index, qEnd) <= 0 {
		out = append(out, cur.ending.items...)
		cur = cur.next[0]
	}
	return out
}

// FindContainedIn returns every marker whose interval is a subset of
// [qStart, qEnd]: qStart <= start and end <= qEnd.
func (l *List[K, M]) FindContainedIn(qStart, qEnd K) []M {
	var out []M
	for _, m := range l.FindStartingIn(qStart, qEnd) {
		if l.cmp(l.endOf(m), qEnd) <= 0 {
			out = append(out, m)
		}
	}
	return out
}

// FindFirstAfterMin returns the markers starting at the smallest index
// holding any marker endpoint, or empty if the list has none.
func (l *List[K, M]) FindFirstAfterMin() []M {
	n := l.head.next[0]
	if n == l.tail {
		return nil
	}
	return n.starting.toSlice()
}

// FindLastBeforeMax returns the markers ending at the largest index
// holding any marker endpoint, or empty if the list has none. This is
// intentionally a linear scan rather than a maintained back-pointer:
// predecessor tracking at every level would double the bookkeeping
// adjustMarkersOnInsert/Remove already has to do, for a query this
// implementation doesn't expect to be on a hot path.
func (l *List[K, M]) FindLastBeforeMax() []M {
	cur := l.head
	if cur.next[0] == l.tail {
		return nil
	}
	for cur.next[0] != l.tail {
		cur = cur.next[0]
	}
	return cur.ending.toSlice()
}
