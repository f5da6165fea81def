package islist

import (
	"math/rand"
	"sort"
	"testing"
)

func sortedStrings(xs []string) []string {
	out := append([]string(nil), xs...)
	sort.Strings(out)
	return out
}

func assertSameSet(t *testing.T, got, want []string) {
	t.Helper()
	g, w := sortedStrings(got), sortedStrings(want)
	if len(g) != len(w) {
		t.Fatalf("got %v, want %v", g, w)
	}
	for i := range g {
		if g[i] != w[i] {
			t.Fatalf("got %v, want %v", g, w)
		}
	}
}

func TestFindContainingBasic(t *testing.T) {
	l := NewWithSeed[int, string](0, 100, 1)
	if err := l.Insert("a", 2, 7); err != nil {
		t.Fatalf("insert a: %v", err)
	}
	if err := l.Insert("b", 1, 5); err != nil {
		t.Fatalf("insert b: %v", err)
	}
	if err := l.Insert("c", 8, 8); err != nil {
		t.Fatalf("insert c: %v", err)
	}

	assertSameSet(t, l.FindContaining(1), []string{"b"})
	assertSameSet(t, l.FindContaining(2), []string{"b", "a"})
	assertSameSet(t, l.FindContaining(8), []string{"c"})

	if err := l.Remove("b"); err != nil {
		t.Fatalf("remove b: %v", err)
	}
	assertSameSet(t, l.FindContaining(2), []string{"a"})
}

func TestFindContainingMultiPoint(t *testing.T) {
	l := NewWithSeed[int, string](0, 100, 1)
	must(t, l.Insert("a", 2, 7))
	must(t, l.Insert("b", 1, 5))
	must(t, l.Insert("c", 8, 8))

	assertSameSet(t, l.FindContaining(1, 2), []string{"b"})
	assertSameSet(t, l.FindContaining(2, 4, 5), []string{"b", "a"})
	assertSameSet(t, l.FindContaining(1, 8), nil)
	assertSameSet(t, l.FindContaining(), nil)
}

func TestFindFirstAfterMin(t *testing.T) {
	l := NewWithSeed[int, int](0, 100, 2)
	must(t, l.Insert(0, 1, 3))
	must(t, l.Insert(1, 3, 5))
	must(t, l.Insert(2, 5, 7))
	must(t, l.Insert(3, 1, 5))

	got := l.FindFirstAfterMin()
	want := []int{0, 3}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("FindFirstAfterMin() = %v; want %v", got, want)
	}
}

func TestFindLastBeforeMax(t *testing.T) {
	l := NewWithSeed[int, int](0, 100, 3)
	must(t, l.Insert(0, 1, 7))
	must(t, l.Insert(1, 3, 5))
	must(t, l.Insert(2, 5, 7))
	must(t, l.Insert(3, 1, 5))

	got := l.FindLastBeforeMax()
	want := []int{0, 2}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("FindLastBeforeMax() = %v; want %v", got, want)
	}
}

func TestRandomizedInvariantFuzz(t *testing.T) {
	l := NewWithSeed[int, int](0, 100, 42)
	r := rand.New(rand.NewSource(7))

	live := map[int]bool{}
	nextMarker := 0

	for step := 0; step < 100; step++ {
		if len(live) > 0 && r.Float64() < 0.2 {
			var victim int
			for m := range live {
				victim = m
				break
			}
			if err := l.Remove(victim); err != nil {
				t.Fatalf("step %d: remove %d: %v", step, victim, err)
			}
			delete(live, victim)
		} else {
			s := 1 + r.Intn(98)
			e := s + r.Intn(99-s)
			m := nextMarker
			nextMarker++
			if err := l.Insert(m, s, e); err != nil {
				t.Fatalf("step %d: insert %d [%d,%d]: %v", step, m, s, e, err)
			}
			live[m] = true
		}
		if err := l.VerifyMarkerInvariant(); err != nil {
			t.Fatalf("step %d: invariant violated: %v", step, err)
		}
	}
}

type pair struct {
	p, q int
}

func lexComparator() Comparator[pair] {
	return func(a, b pair) int {
		switch {
		case a.p != b.p:
			if a.p < b.p {
				return -1
			}
			return 1
		case a.q != b.q:
			if a.q < b.q {
				return -1
			}
			return 1
		default:
			return 0
		}
	}
}

func TestLexicographicComparator(t *testing.T) {
	negInf := pair{p: -1 << 30, q: -1 << 30}
	posInf := pair{p: 1 << 30, q: 1 << 30}
	l := NewWithComparator[pair, string](lexComparator(), negInf, posInf, 5)

	must(t, l.Insert("a", pair{1, 2}, pair{3, 4}))
	must(t, l.Insert("b", pair{2, 1}, pair{3, 10}))

	assertSameSet(t, l.FindContaining(pair{1, 1 << 29}), []string{"a"})
	assertSameSet(t, l.FindContaining(pair{2, 20}), []string{"a", "b"})
}

func TestClearResetsEverything(t *testing.T) {
	l := NewWithSeed[int, int](0, 100, 9)
	r := rand.New(rand.NewSource(9))
	for m := 0; m < 100; m++ {
		s := 1 + r.Intn(97)
		e := s + 1 + r.Intn(98-s)
		must(t, l.Insert(m, s, e))
	}

	l.Clear()

	if got := l.IntervalsByMarker(); len(got) != 0 {
		t.Fatalf("IntervalsByMarker() after Clear = %v, want empty", got)
	}

	for m := 0; m < 100; m++ {
		if _, _, ok := l.IntervalByMarker(m); ok {
			t.Fatalf("marker %d still present after Clear", m)
		}
	}
	if got := l.FindContainedIn(0, 100); len(got) != 0 {
		t.Fatalf("FindContainedIn after Clear = %v, want empty", got)
	}
}

func TestInsertRejectsBoundsAndDuplicates(t *testing.T) {
	l := NewWithSeed[int, string](0, 100, 11)
	if err := l.Insert("a", 0, 5); err == nil {
		t.Fatalf("expected error for start == minIndex")
	}
	if err := l.Insert("a", 5, 100); err == nil {
		t.Fatalf("expected error for end == maxIndex")
	}
	if err := l.Insert("a", 10, 5); err == nil {
		t.Fatalf("expected error for start > end")
	}
	must(t, l.Insert("a", 5, 10))
	if err := l.Insert("a", 20, 30); err == nil {
		t.Fatalf("expected error for duplicate marker")
	}
}

func TestUpdateReplacesInterval(t *testing.T) {
	l := NewWithSeed[int, string](0, 100, 12)
	must(t, l.Insert("a", 10, 20))
	assertSameSet(t, l.FindContaining(15), []string{"a"})

	must(t, l.Update("a", 30, 40))
	assertSameSet(t, l.FindContaining(15), nil)
	assertSameSet(t, l.FindContaining(35), []string{"a"})

	if err := l.VerifyMarkerInvariant(); err != nil {
		t.Fatalf("invariant after update: %v", err)
	}
}

func TestSetPromoteProbAffectsSubsequentInserts(t *testing.T) {
	l := NewWithSeed[int, int](0, 100, 21)
	l.SetPromoteProb(1.0)
	for m := 0; m < 20; m++ {
		must(t, l.Insert(m, m+1, m+1))
	}
	if err := l.VerifyMarkerInvariant(); err != nil {
		t.Fatalf("invariant with p=1: %v", err)
	}

	tall := false
	cur := l.head.next[0]
	for cur != l.tail {
		if cur.height == maxHeight {
			tall = true
		}
		cur = cur.next[0]
	}
	if !tall {
		t.Fatalf("expected at least one max-height node with promoteProb=1")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
