package pairs_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nearpair/pairs"
	"github.com/katalvlaran/nearpair/point"
)

// randomPoints returns n points drawn from a small cube so that distance ties
// are frequent. The generator is seeded for reproducibility.
func randomPoints(n int, seed int64) []point.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]point.Point, n)
	for i := range pts {
		pts[i] = point.Point{X: int64(r.Intn(8)), Y: int64(r.Intn(8)), Z: int64(r.Intn(8))}
	}

	return pts
}

// drain consumes every pair from r.
func drain(r *pairs.Ranker) []pairs.Pair {
	var out []pairs.Pair
	for {
		p, ok := r.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}

func TestSquaredDistance(t *testing.T) {
	a := point.Point{X: 1, Y: -2, Z: 3}
	b := point.Point{X: -3, Y: 1, Z: 3}
	assert.Equal(t, uint64(16+9+0), pairs.SquaredDistance(a, b))
	assert.Equal(t, pairs.SquaredDistance(a, b), pairs.SquaredDistance(b, a))
	assert.Zero(t, pairs.SquaredDistance(a, a))

	// Extreme corners stay exact in uint64.
	lo := point.Point{X: -point.MaxCoordinate, Y: -point.MaxCoordinate, Z: -point.MaxCoordinate}
	hi := point.Point{X: point.MaxCoordinate, Y: point.MaxCoordinate, Z: point.MaxCoordinate}
	side := uint64(2 * point.MaxCoordinate)
	assert.Equal(t, 3*side*side, pairs.SquaredDistance(lo, hi))
}

// TestRanker_Order checks every pair appears once, i < j, in (Dist, I, J) order.
func TestRanker_Order(t *testing.T) {
	pts := []point.Point{{X: 0}, {X: 1}, {Y: 5}, {Y: 6}, {X: 100, Y: 100, Z: 100}}
	r, err := pairs.NewRanker(pts)
	require.NoError(t, err)
	assert.Equal(t, 10, r.Len())

	got := drain(r)
	require.Len(t, got, 10)

	want := []pairs.Pair{
		{I: 0, J: 1, Dist: 1},
		{I: 2, J: 3, Dist: 1},
		{I: 0, J: 2, Dist: 25},
		{I: 1, J: 2, Dist: 26},
	}
	if diff := cmp.Diff(want, got[:4]); diff != "" {
		t.Errorf("nearest pairs mismatch (-want +got):\n%s", diff)
	}

	seen := make(map[[2]int]bool)
	for k, p := range got {
		assert.Less(t, p.I, p.J)
		assert.False(t, seen[[2]int{p.I, p.J}], "pair %v repeated", p)
		seen[[2]int{p.I, p.J}] = true
		if k > 0 {
			assert.LessOrEqual(t, got[k-1].Dist, p.Dist)
		}
	}
	assert.Zero(t, r.Remaining())
}

// TestRanker_DuplicatesAreDistinct ranks identical coordinates as a zero-distance pair.
func TestRanker_DuplicatesAreDistinct(t *testing.T) {
	pts := []point.Point{{X: 9}, {X: 3}, {X: 9}}
	r, err := pairs.NewRanker(pts)
	require.NoError(t, err)

	p, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, pairs.Pair{I: 0, J: 2, Dist: 0}, p)
}

// TestRanker_MethodsAgree verifies sort and heap yield the same sequence.
func TestRanker_MethodsAgree(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		pts := randomPoints(60, seed)

		rs, err := pairs.NewRanker(pts, pairs.WithMethod(pairs.MethodSort))
		require.NoError(t, err)
		rh, err := pairs.NewRanker(pts, pairs.WithMethod(pairs.MethodHeap))
		require.NoError(t, err)
		assert.Equal(t, pairs.MethodHeap, rh.Method())

		if diff := cmp.Diff(drain(rs), drain(rh)); diff != "" {
			t.Fatalf("seed %d: sort vs heap mismatch (-sort +heap):\n%s", seed, diff)
		}
	}
}

// TestRanker_Deterministic ranks the same input identically twice.
func TestRanker_Deterministic(t *testing.T) {
	pts := randomPoints(40, 3)
	a, err := pairs.NewRanker(pts)
	require.NoError(t, err)
	b, err := pairs.NewRanker(pts)
	require.NoError(t, err)
	assert.Equal(t, drain(a), drain(b))
}

// TestRanker_Peek does not consume.
func TestRanker_Peek(t *testing.T) {
	for _, m := range []pairs.Method{pairs.MethodSort, pairs.MethodHeap} {
		r, err := pairs.NewRanker([]point.Point{{}, {X: 2}, {X: 3}}, pairs.WithMethod(m))
		require.NoError(t, err)

		peeked, ok := r.Peek()
		require.True(t, ok)
		assert.Equal(t, 3, r.Remaining())

		next, ok := r.Next()
		require.True(t, ok)
		assert.Equal(t, peeked, next)
		assert.Equal(t, pairs.Pair{I: 1, J: 2, Dist: 1}, next)
		assert.Equal(t, 2, r.Remaining())
	}
}

// TestRanker_FewerThanTwoPoints yields nothing.
func TestRanker_FewerThanTwoPoints(t *testing.T) {
	for _, pts := range [][]point.Point{nil, {{X: 1}}} {
		for _, m := range []pairs.Method{pairs.MethodSort, pairs.MethodHeap} {
			r, err := pairs.NewRanker(pts, pairs.WithMethod(m))
			require.NoError(t, err)
			assert.Zero(t, r.Len())
			_, ok := r.Next()
			assert.False(t, ok)
			_, ok = r.Peek()
			assert.False(t, ok)
		}
	}
}

func TestRanker_Validation(t *testing.T) {
	pts := randomPoints(5, 1)

	_, err := pairs.NewRanker(pts, pairs.WithMaxPoints(4))
	assert.ErrorIs(t, err, pairs.ErrTooManyPoints)

	_, err = pairs.NewRanker(pts, pairs.WithMaxPoints(5))
	assert.NoError(t, err)

	_, err = pairs.NewRanker(pts, pairs.WithMaxPoints(0))
	assert.ErrorIs(t, err, pairs.ErrOptionViolation)

	_, err = pairs.NewRanker(pts, pairs.WithMethod("bogo"))
	assert.ErrorIs(t, err, pairs.ErrUnknownMethod)
}

// TestRanker_CoordinateRange rejects points whose squared distances would
// overflow, instead of ranking wrapped keys.
func TestRanker_CoordinateRange(t *testing.T) {
	const huge = math.MaxInt64 / 2
	pts := []point.Point{{X: 0}, {X: 10}, {X: huge}, {X: -huge}}

	for _, m := range []pairs.Method{pairs.MethodSort, pairs.MethodHeap} {
		_, err := pairs.NewRanker(pts, pairs.WithMethod(m))
		assert.ErrorIs(t, err, pairs.ErrCoordinateRange)
	}

	_, err := pairs.NewRanker([]point.Point{{}, {Z: -point.MaxCoordinate - 1}})
	assert.ErrorIs(t, err, pairs.ErrCoordinateRange)

	// The bound itself is accepted.
	r, err := pairs.NewRanker([]point.Point{{X: point.MaxCoordinate}, {X: -point.MaxCoordinate}})
	require.NoError(t, err)
	p, ok := r.Next()
	require.True(t, ok)
	side := uint64(2 * point.MaxCoordinate)
	assert.Equal(t, side*side, p.Dist)
}
