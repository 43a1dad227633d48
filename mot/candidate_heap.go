package mot

// Candidate is a scored (cached track, detection) pair
type Candidate struct {
	Score     float64
	Cached    int
	Detection int
}

type rankedCandidate struct {
	Candidate
	// Position in generation order, breaks ties so the walk stays stable
	seq int
}

// Adapted from container/heap - https://golang.org/pkg/container/heap/
// Why make copy? Just want to avoid type conversion and keep ordering pluggable

type candidateHeap struct {
	items      []rankedCandidate
	descending bool
}

// newCandidateHeap keeps only candidates with score > 0, NaN would break heap ordering
func newCandidateHeap(candidates []Candidate, descending bool) *candidateHeap {
	h := &candidateHeap{
		items:      make([]rankedCandidate, 0, len(candidates)),
		descending: descending,
	}
	for i := range candidates {
		if !(candidates[i].Score > 0) {
			continue
		}
		h.Push(rankedCandidate{Candidate: candidates[i], seq: i})
	}
	return h
}

func (h *candidateHeap) Len() int { return len(h.items) }

func (h *candidateHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.Score != b.Score {
		if h.descending {
			return a.Score > b.Score
		}
		return a.Score < b.Score
	}
	return a.seq < b.seq
}

func (h *candidateHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push pushes the element x onto the heap.
// The complexity is O(log n) where n = h.Len().
func (h *candidateHeap) Push(x rankedCandidate) {
	h.items = append(h.items, x)
	h.up(h.Len() - 1)
}

// Pop removes and returns the first element (according to Less) from the heap.
// The complexity is O(log n) where n = h.Len().
func (h *candidateHeap) Pop() rankedCandidate {
	n := h.Len() - 1
	h.Swap(0, n)
	h.down(0, n)
	last := h.items[n]
	h.items = h.items[:n]
	return last
}

func (h *candidateHeap) up(j int) {
	for {
		i := (j - 1) / 2
		if i == j || !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		j = i
	}
}

func (h *candidateHeap) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 {
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && h.Less(j2, j1) {
			j = j2
		}
		if !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		i = j
	}
	return i > i0
}
