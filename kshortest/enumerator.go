package kshortest

import "container/heap"

// edgePath is one frontier entry: a candidate sidetrack to append to the
// path that produced it. node indexes into the shared pathArena; heapPos
// selects which arc that node stands for (-1 for the node's own arc,
// otherwise heapArr[heapPos]). last chains back to the entry it was
// spawned from, letting the full sidetrack sequence be reconstructed once
// an entry is popped - there is no separate retired-entries store since
// Go's garbage collector keeps the chain alive for exactly as long as
// something still points into it.
type edgePath struct {
	node    int
	heapPos int
	last    *edgePath
	weight  float64
}

func cutArc(arena *pathArena, e *edgePath) *Arc {
	n := arena.get(e.node)
	if e.heapPos < 0 {
		return n.arc
	}
	return n.heapArr[e.heapPos]
}

type edgePathHeap []*edgePath

func (h edgePathHeap) Len() int            { return len(h) }
func (h edgePathHeap) Less(i, j int) bool  { return h[i].weight < h[j].weight }
func (h edgePathHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgePathHeap) Push(x interface{}) { *h = append(*h, x.(*edgePath)) }
func (h *edgePathHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// emitTreePath reports the tree arcs from state to dest (the overall
// destination, or the source of the next sidetrack on the path), per
// spec's SidetracksOnly option, which suppresses tree arcs entirely since
// a sidetrack-only consumer only cares about where paths diverge.
func emitTreePath(tree []*Arc, state, dest int, v Visitor, sidetracksOnly bool) {
	if sidetracksOnly {
		return
	}
	for state != dest {
		a := tree[state]
		v.BestEdge(*a)
		state = a.Dest
	}
}

func untelescope(a *Arc, dist []float64) Arc {
	return Arc{Source: a.Source, Dest: a.Dest, Label: a.Label, Weight: a.Weight + dist[a.Source] - dist[a.Dest]}
}

func isTreeChild(arena *pathArena, parentIdx, childIdx int) bool {
	p := arena.get(parentIdx)
	return p.left == childIdx || p.right == childIdx
}

// reconstructSidetracks walks an entry's last-chain to recover the full,
// in-order sequence of sidetrack arcs that define its path. Not every
// ancestor in the chain is a genuine sidetrack: some entries only refine
// which candidate within the same originating state's heap (or the same
// persistent tree) is cheapest, and are skipped - an ancestor is skipped
// exactly when the step from it to its child stayed within that local
// exploration instead of crossing into a new state's heap.
func reconstructSidetracks(arena *pathArena, top *edgePath) []*Arc {
	chain := []*Arc{cutArc(arena, top)}
	cur := top
	for cur.last != nil {
		last := cur.last
		localRefinement := (last.heapPos == -1 && (cur.heapPos == 0 || isTreeChild(arena, last.node, cur.node))) ||
			(last.heapPos >= 0 && cur.heapPos != -1)
		if !localRefinement {
			chain = append(chain, cutArc(arena, last))
		}
		cur = last
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// spawnChildren generates the up to four frontier entries reachable by
// extending top's choice: for a node-level entry, its two persistent-tree
// children plus entry into its own state's local arc heap; for a
// local-heap entry, its two binary-heap children; and, from either, the
// root of the next state's own tree once the chosen sidetrack arc is
// taken.
func spawnChildren(arena *pathArena, roots []int, top *edgePath, frontier *edgePathHeap) {
	from := arena.get(top.node)
	var spawn *Arc

	if top.heapPos == -1 {
		spawn = from.arc
		if from.left != -1 {
			child := arena.get(from.left)
			heap.Push(frontier, &edgePath{node: from.left, heapPos: -1, last: top, weight: top.weight + child.arc.Weight - spawn.Weight})
		}
		if from.right != -1 {
			child := arena.get(from.right)
			heap.Push(frontier, &edgePath{node: from.right, heapPos: -1, last: top, weight: top.weight + child.arc.Weight - spawn.Weight})
		}
		if len(from.heapArr) > 0 {
			heap.Push(frontier, &edgePath{node: top.node, heapPos: from.heapIdx, last: top, weight: top.weight + from.heapArr[from.heapIdx].Weight - spawn.Weight})
		}
	} else {
		spawn = from.heapArr[top.heapPos]
		iChild := 2*top.heapPos + 1
		if len(from.heapArr) > iChild {
			heap.Push(frontier, &edgePath{node: top.node, heapPos: iChild, last: top, weight: top.weight + from.heapArr[iChild].Weight - spawn.Weight})
			iChild2 := iChild + 1
			if len(from.heapArr) > iChild2 {
				heap.Push(frontier, &edgePath{node: top.node, heapPos: iChild2, last: top, weight: top.weight + from.heapArr[iChild2].Weight - spawn.Weight})
			}
		}
	}

	if nextRoot := roots[spawn.Dest]; nextRoot != -1 {
		n := arena.get(nextRoot)
		heap.Push(frontier, &edgePath{node: nextRoot, heapPos: -1, last: top, weight: top.weight + n.arc.Weight})
	}
}

// enumerate reports the rank-1 shortest path and then, if k > 1 and at
// least one sidetrack exists, best-first searches the sidetrack frontier
// for ranks 2..k.
func enumerate(tree []*Arc, dist []float64, arena *pathArena, roots []int, source, dest, k int, baseCost float64, v Visitor, opts Options) {
	v.StartPath(1, baseCost)
	emitTreePath(tree, source, dest, v, opts.SidetracksOnly)
	v.EndPath()

	if k <= 1 || roots[source] == -1 {
		return
	}

	frontier := &edgePathHeap{}
	rootNode := arena.get(roots[source])
	heap.Push(frontier, &edgePath{node: roots[source], heapPos: -1, weight: rootNode.arc.Weight})

	rank := 1
	for frontier.Len() > 0 && rank < k {
		rank++
		top := heap.Pop(frontier).(*edgePath)

		sidetracks := reconstructSidetracks(arena, top)
		cost := baseCost
		for _, a := range sidetracks {
			cost += a.Weight
		}

		v.StartPath(rank, cost)
		state := source
		for _, a := range sidetracks {
			emitTreePath(tree, state, a.Source, v, opts.SidetracksOnly)
			v.SidetrackEdge(untelescope(a, dist))
			state = a.Dest
		}
		emitTreePath(tree, state, dest, v, opts.SidetracksOnly)
		v.EndPath()

		spawnChildren(arena, roots, top, frontier)
	}
}
