package pairs

// pairPQ implements heap.Interface for a min-heap of Pair in ranking order.
type pairPQ []Pair

// Len returns the number of pairs in the queue.
func (pq pairPQ) Len() int { return len(pq) }

// Less compares by Dist, then I, then J.
func (pq pairPQ) Less(i, j int) bool { return less(pq[i], pq[j]) }

// Swap swaps elements at indices i and j.
func (pq pairPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a Pair. Called by heap.Push.
func (pq *pairPQ) Push(x any) { *pq = append(*pq, x.(Pair)) }

// Pop removes and returns the last element after heap adjustment,
// which is the minimum. Called by heap.Pop.
func (pq *pairPQ) Pop() any {
	old := *pq
	n := len(old)
	p := old[n-1]
	*pq = old[:n-1]

	return p
}
