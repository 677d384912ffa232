package frontier

// candidate is a queued connection src→dst. seq is the push sequence number
// and breaks weight ties in favour of the older entry.
type candidate struct {
	src    int
	dst    int
	group  int
	weight float64
	seq    uint64
}

// candidatePQ implements heap.Interface as a min-heap on (weight, seq).
// Stale entries (dst already annexed) are left in place and skipped on pop.
type candidatePQ []candidate

// Len returns the number of queued candidates.
func (pq candidatePQ) Len() int { return len(pq) }

// Less orders by weight, then by push sequence.
func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps elements at indices i and j.
func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate; called by heap.Push.
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes the last element; called by heap.Pop after it has moved the
// minimum there.
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
