package pairs

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/nearpair/point"
)

// Ranker yields every pair of a point set in ascending distance order.
// It is single-use: pairs are consumed by Next and never revisited.
type Ranker struct {
	method Method
	total  int

	// MethodSort state.
	sorted []Pair
	cursor int

	// MethodHeap state.
	pq pairPQ
}

// NewRanker computes all pairwise squared distances of pts and prepares them
// for ranked retrieval.
//
// Steps:
//  1. Apply options; reject invalid ones and unknown methods.
//  2. Reject len(pts) > MaxPoints with ErrTooManyPoints and any coordinate
//     beyond ±point.MaxCoordinate with ErrCoordinateRange.
//  3. Enumerate (i, j), i < j, in index order with their squared distance.
//  4. MethodSort: stable sort by Dist, keeping (i, j) order among ties.
//     MethodHeap: heap.Init with the (Dist, I, J) comparator.
//
// Complexity: O(P log P) for MethodSort, O(P) for MethodHeap, P = N·(N−1)/2.
func NewRanker(pts []point.Point, opts ...Option) (*Ranker, error) {
	// 1. Options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Method != MethodSort && o.Method != MethodHeap {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}

	// 2. Memory bound.
	n := len(pts)
	if n > o.MaxPoints {
		return nil, fmt.Errorf("%w: %d points, limit %d", ErrTooManyPoints, n, o.MaxPoints)
	}
	for i, p := range pts {
		if !inRange(p.X) || !inRange(p.Y) || !inRange(p.Z) {
			return nil, fmt.Errorf("%w: point %d (%s)", ErrCoordinateRange, i, p)
		}
	}

	// 3. Enumerate all pairs once.
	total := 0
	if n > 1 {
		total = n * (n - 1) / 2
	}
	all := make([]Pair, 0, total)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			all = append(all, Pair{I: i, J: j, Dist: SquaredDistance(pts[i], pts[j])})
		}
	}

	r := &Ranker{method: o.Method, total: total}

	// 4. Order.
	switch o.Method {
	case MethodSort:
		// all is already in (i, j) order, so a stable sort by Dist
		// yields the full (Dist, I, J) order.
		sort.SliceStable(all, func(a, b int) bool {
			return all[a].Dist < all[b].Dist
		})
		r.sorted = all
	case MethodHeap:
		r.pq = pairPQ(all)
		heap.Init(&r.pq)
	}

	return r, nil
}

// Next returns the nearest pair not yet consumed. ok is false once every
// pair has been returned.
func (r *Ranker) Next() (p Pair, ok bool) {
	if r.method == MethodHeap {
		if r.pq.Len() == 0 {
			return Pair{}, false
		}
		return heap.Pop(&r.pq).(Pair), true
	}

	if r.cursor >= len(r.sorted) {
		return Pair{}, false
	}
	p = r.sorted[r.cursor]
	r.cursor++

	return p, true
}

// Peek returns the pair Next would return, without consuming it.
func (r *Ranker) Peek() (Pair, bool) {
	if r.method == MethodHeap {
		if r.pq.Len() == 0 {
			return Pair{}, false
		}
		return r.pq[0], true
	}

	if r.cursor >= len(r.sorted) {
		return Pair{}, false
	}

	return r.sorted[r.cursor], true
}

// Len returns the total number of pairs ranked, consumed or not.
func (r *Ranker) Len() int { return r.total }

// Remaining returns the number of pairs not yet consumed.
func (r *Ranker) Remaining() int {
	if r.method == MethodHeap {
		return r.pq.Len()
	}

	return len(r.sorted) - r.cursor
}

// Method reports the ranking method in use.
func (r *Ranker) Method() Method { return r.method }
