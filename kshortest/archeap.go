package kshortest

import "container/heap"

// arcHeap is a binary min-heap (by telescoped Weight) over a state's
// sidetrack arcs. container/heap.Init arranges the backing slice so index
// 0 is the minimum and children of i sit at 2i+1 and 2i+2 - exactly the
// H_out(v) layout spec.md describes, so no bespoke heap-on-array utility
// is needed.
type arcHeap []*Arc

func (h arcHeap) Len() int            { return len(h) }
func (h arcHeap) Less(i, j int) bool  { return h[i].Weight < h[j].Weight }
func (h arcHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *arcHeap) Push(x interface{}) { *h = append(*h, x.(*Arc)) }
func (h *arcHeap) Pop() interface{} {
	old := *h
	n := len(old)
	a := old[n-1]
	*h = old[:n-1]
	return a
}

// buildArcHeaps heap-orders a copy of every state's sidetrack out-arcs
// (st itself is left unchanged) and returns the per-state slices, indexed
// by state.
func buildArcHeaps(st *compiledGraph) [][]*Arc {
	heaps := make([][]*Arc, st.n())
	for v, arcs := range st.out {
		if len(arcs) == 0 {
			continue
		}
		h := arcHeap(append([]*Arc(nil), arcs...))
		heap.Init(&h)
		heaps[v] = h
	}
	return heaps
}
