// Package pairs ranks every unordered pair of points by squared Euclidean
// distance, nearest first.
//
// What & Why
//
//   - Every pair (i, j) with i < j is produced exactly once and tagged with
//     dx²+dy²+dz². The square root is never taken: integer comparison keeps
//     the order exact.
//
//   - The order is total and deterministic: ascending Dist, then ascending I,
//     then ascending J. Running the same input twice yields the same sequence,
//     whichever Method is selected.
//
// Methods
//
//   - MethodSort (default)
//
//   - Strategy: materialize all N·(N−1)/2 pairs in (i, j) order, then stable-sort
//     by Dist. Next walks the sorted slice with a cursor.
//
//   - Complexity: O(P log P) construction, O(1) per Next, where P = N·(N−1)/2.
//
//   - MethodHeap
//
//   - Strategy: heap.Init over all pairs, then pop lazily. Cheaper when only a
//     small budget of pairs is ever consumed.
//
//   - Complexity: O(P) construction, O(log P) per Next.
//
// Memory is O(P) for either method. WithMaxPoints bounds N up front so an
// oversized input is rejected with ErrTooManyPoints instead of exhausting
// memory. Fewer than two points is not an error: the ranker is simply empty.
//
// Errors:
//
//	ErrTooManyPoints   - more points than WithMaxPoints allows.
//	ErrUnknownMethod   - Method is neither MethodSort nor MethodHeap.
//	ErrOptionViolation - an invalid Option was supplied.
package pairs
