package skyline

import "container/heap"

// activeHeights is a multiset of the heights covering the sweep line.
// A height is in counts iff its count is positive. The heap may hold stale
// entries for heights that have since left counts; max drops them lazily.
type activeHeights struct {
	counts map[float64]int
	tops   maxHeap
}

func newActiveHeights() *activeHeights {
	return &activeHeights{counts: make(map[float64]int)}
}

func (a *activeHeights) add(h float64) {
	a.counts[h]++
	if a.counts[h] == 1 {
		heap.Push(&a.tops, h)
	}
}

// remove decrements h and deletes it once its count reaches zero.
// It reports false if h was not active.
func (a *activeHeights) remove(h float64) bool {
	n, ok := a.counts[h]
	if !ok {
		return false
	}
	if n == 1 {
		delete(a.counts, h)
	} else {
		a.counts[h] = n - 1
	}
	return true
}

// max returns the tallest active height, or 0 when nothing is active.
func (a *activeHeights) max() float64 {
	for a.tops.Len() > 0 {
		top := a.tops[0]
		if _, ok := a.counts[top]; ok {
			return top
		}
		heap.Pop(&a.tops)
	}
	return 0
}

func (a *activeHeights) empty() bool { return len(a.counts) == 0 }

type maxHeap []float64

func (h maxHeap) Len() int           { return len(h) }
func (h maxHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h maxHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *maxHeap) Push(x interface{}) {
	*h = append(*h, x.(float64))
}

func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
