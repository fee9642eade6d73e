package kshortest

import (
	"container/heap"
	"math"
)

// shortestPathTree computes, for every state reachable to dest in cg (the
// *original*-direction compiled graph), dist[v] = cost of the cheapest
// v->dest path, and tree[v] = the single out-arc of v realizing that path
// (nil for dest itself and for unreachable states).
//
// It runs a lazy decrease-key Dijkstra (a container/heap queue that pushes
// a state again whenever its distance improves) on the reverse of cg,
// rooted at dest: a shortest path from dest to x in cg's reverse, walked
// backwards, is a shortest path from x to dest in cg, so the arcs it
// settles are exactly dest's shortest-path-tree edge set in cg.
func shortestPathTree(cg *compiledGraph, dest int) (dist []float64, tree []*Arc) {
	n := cg.n()
	rev := cg.reverse()

	dist = make([]float64, n)
	tree = make([]*Arc, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[dest] = 0

	pq := make(sptQueue, 0, n)
	heap.Push(&pq, &sptItem{state: dest, dist: 0})

	for pq.Len() > 0 {
		top := heap.Pop(&pq).(*sptItem)
		u := top.state
		if done[u] {
			continue
		}
		done[u] = true

		for _, re := range rev.out[u] {
			c := re.Dest
			if done[c] {
				continue
			}
			cand := dist[u] + re.Weight
			if cand < dist[c] {
				dist[c] = cand
				// re is the reverse arc u->c standing in for the original
				// arc c->u; the tree arc for c is that original arc.
				tree[c] = &Arc{Source: c, Dest: u, Weight: re.Weight, Label: re.Label}
				heap.Push(&pq, &sptItem{state: c, dist: cand})
			}
		}
	}
	return dist, tree
}

type sptItem struct {
	state int
	dist  float64
}

type sptQueue []*sptItem

func (q sptQueue) Len() int            { return len(q) }
func (q sptQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q sptQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *sptQueue) Push(x interface{}) { *q = append(*q, x.(*sptItem)) }
func (q *sptQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
