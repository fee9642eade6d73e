// Package core defines the Vertex, Edge and Graph types shared by every
// lvlath algorithm package.
//
// Graph is a thread-safe adjacency-map graph: vertices and edges carry
// string IDs, edges carry a float64 weight, and the default orientation
// (directed/undirected), weight policy, loop policy and multi-edge policy
// are all fixed at construction time via functional options.
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	g.AddEdge("a", "b", 2.5)
//	g.AddEdge("b", "c", 1)
//	nbs, _ := g.Neighbors("a")
package core
