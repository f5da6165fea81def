package islist

// adjustMarkersOnInsert restores the marker-coverage invariant after
// newNode has been spliced into the tower at levels
// 0..newNode.height-1, with update[i] the node whose level-i pointer
// now targets newNode.
//
// Splicing newNode in splits, at every level i < newNode.height, the
// single edge (update[i], i) into two: (update[i], i) -> newNode and
// (newNode, i) -> whatever update[i] used to point to. Any marker that
// was riding that original edge must end up on exactly one of the two
// new edges, or be promoted to ride a higher level through newNode if
// newNode is tall enough to offer one without overshooting the marker.
//
// Phase 1 settles the outgoing side (edges leaving newNode); phase 2
// settles the incoming side (edges entering newNode). Both phases read
// update[*].markers; phase 1 must run first, because phase 2 removes
// promoted markers from those sets.
func (l *List[K, M]) adjustMarkersOnInsert(newNode *node[K, M], update []*node[K, M]) {
	h := newNode.height
	if h == 0 {
		return
	}

	var pending []M
	for i := 0; i < h; i++ {
		top := i == h-1

		fresh := update[i].markers[i].snapshot()
		cands := make([]M, 0, len(pending)+len(fresh))
		cands = append(cands, pending...)
		cands = append(cands, fresh...)
		pending = pending[:0]

		for _, m := range cands {
			if !top && l.cmp(newNode.next[i+1].index, l.endOf(m)) <= 0 {
				// m can ride level i+1 from newNode without overshooting
				// its own end; the stretch of level-i edges it used to
				// occupy beyond newNode is now redundant.
				l.unstampFlatRun(newNode.next[i], newNode.next[i+1], i, m)
				pending = append(pending, m)
				continue
			}
			newNode.markers[i].add(m)
		}
	}

	// Phase 2: incoming side. Independent pending set and direction.
	pending = pending[:0]
	for i := 0; i < h; i++ {
		top := i == h-1

		fresh := update[i].markers[i].snapshot()
		cands := make([]M, 0, len(pending)+len(fresh))
		cands = append(cands, pending...)
		cands = append(cands, fresh...)
		pending = pending[:0]

		for _, m := range cands {
			if !top && l.cmp(l.startOf(m), update[i+1].index) <= 0 {
				// m's interval reaches back at least to update[i+1], so
				// it can approach newNode directly from there at level
				// i+1, skipping the level-i hops in between.
				l.unstampFlatRun(update[i+1], newNode, i, m)
				pending = append(pending, m)
				continue
			}
			update[i].markers[i].add(m)
		}
	}
}

// adjustMarkersOnRemove restores the marker-coverage invariant before
// node is unlinked from the tower at levels 0..node.height-1, with
// update[i] its level-i predecessor. This is the inverse of
// adjustMarkersOnInsert: removing node merges, at every level
// i < node.height, the two edges (update[i], i) -> node and (node, i)
// -> node.next[i] back into a single edge (update[i], i) ->
// node.next[i]. A marker that can't ride the merged edge without
// over- or under-shooting its own interval must drop to a lower level,
// re-acquiring whatever flat-run coverage that level needs.
func (l *List[K, M]) adjustMarkersOnRemove(n *node[K, M], update []*node[K, M]) {
	h := n.height
	if h == 0 {
		return
	}

	// Phase 1: left of node (incoming edges, update[i].markers[i]).
	var pending []M
	for i := h - 1; i >= 0; i-- {
		fresh := update[i].markers[i].snapshot()
		cands := make([]M, 0, len(pending)+len(fresh))
		cands = append(cands, pending...)
		cands = append(cands, fresh...)
		pending = pending[:0]

		for _, m := range cands {
			if l.cmp(l.endOf(m), n.next[i].index) < 0 {
				// The merged edge (update[i] -> n.next[i]) would reach
				// past m's end; m must ride a lower level instead.
				update[i].markers[i].remove(m)
				if i > 0 {
					l.stampFlatRun(update[i], update[i-1], i-1, m)
				}
				pending = append(pending, m)
				continue
			}
			update[i].markers[i].add(m)
		}
	}

	// Phase 2: right of node (outgoing edges, node.markers[i]).
	pending = pending[:0]
	for i := h - 1; i >= 0; i-- {
		fresh := n.markers[i].snapshot()
		cands := make([]M, 0, len(pending)+len(fresh))
		cands = append(cands, pending...)
		cands = append(cands, fresh...)
		pending = pending[:0]

		for _, m := range cands {
			if l.cmp(l.startOf(m), update[i].index) > 0 {
				// The merged edge would start before m begins.
				n.markers[i].remove(m)
				if i > 0 {
					l.stampFlatRun(n.next[i-1], n.next[i], i-1, m)
				}
				pending = append(pending, m)
				continue
			}
			n.markers[i].add(m)
		}
	}
}

func (l *List[K, M]) startOf(m M) K {
	iv, _ := l.dir.get(m)
	return iv.start
}

func (l *List[K, M]) endOf(m M) K {
	iv, _ := l.dir.get(m)
	return iv.end
}
