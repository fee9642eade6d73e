package kshortest

import "math"

// sidetrackGraph builds, for every state, the list of its non-tree
// out-arcs with telescoped weight w + dist[dest] - dist[source]. Because
// dist[] is the true shortest distance to the overall destination and
// weights are non-negative, telescoped weight is always >= 0: it is the
// extra cost of taking that one arc instead of continuing along the
// shortest-path tree.
//
// An arc whose dest is unreachable (dist == +Inf) can never be part of any
// finite-cost path to dest and is dropped.
func sidetrackGraph(cg *compiledGraph, tree []*Arc, dist []float64) *compiledGraph {
	st := newCompiledGraph(cg.n())
	for v, arcs := range cg.out {
		for _, a := range arcs {
			if isTreeArc(tree[v], a) {
				continue
			}
			if math.IsInf(dist[a.Dest], 1) {
				continue
			}
			st.out[v] = append(st.out[v], &Arc{
				Source: a.Source,
				Dest:   a.Dest,
				Weight: a.Weight + dist[a.Dest] - dist[a.Source],
				Label:  a.Label,
			})
		}
	}
	return st
}

func isTreeArc(tree, a *Arc) bool {
	return tree != nil && tree.Label == a.Label && tree.Dest == a.Dest
}
