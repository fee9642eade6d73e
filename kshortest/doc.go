// Package kshortest computes the k lowest-cost paths between two vertices
// of a core.Graph, in ascending cost order, using Eppstein's algorithm.
//
// Overview:
//
//   - The graph is compiled into a dense-integer view (states numbered
//     0..N-1), then a shortest-path tree toward dest is computed.
//   - Every out-arc not on that tree is a "sidetrack"; its telescoped
//     weight (w + dist[dest] - dist[source]) is always >= 0.
//   - A per-vertex binary heap of sidetracks, inherited along the tree
//     via a persistent (path-copying) balanced heap, turns "take one
//     extra sidetrack somewhere on the way to dest" into a single
//     best-first search over an implicit meta-heap.
//   - The 1st path is always the tree path (cost == dist[source]); each
//     later path differs from some earlier one by exactly one additional
//     sidetrack.
//
// Complexity: O(E log V) to build the tree-heaps, then O(k log k) to
// enumerate k paths once they are built.
//
// Errors (sentinel):
//
//	ErrNilGraph        - graph is nil.
//	ErrEmptyGraph      - graph has no vertices.
//	ErrVertexNotFound  - source or dest is not a vertex of the graph.
//	ErrInvalidK        - k < 1.
//	ErrNegativeWeight  - an edge has a negative weight.
//
// Example:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	g.AddEdge("a", "b", 1)
//	g.AddEdge("b", "c", 2)
//	v := kshortest.NewCollectingVisitor()
//	err := kshortest.BestPaths(g, "a", "c", 3, v)
//	for _, p := range v.Paths {
//	    fmt.Println(p.Cost)
//	}
package kshortest
