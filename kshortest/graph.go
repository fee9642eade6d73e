package kshortest

import "github.com/katalvlaran/lvlath/core"

// Arc is one directed, weighted connection between two dense-integer
// states. Label carries the core.Edge.ID it was compiled from, standing in
// for spec's opaque "data tag" so an emitted Arc can always be traced back
// to its origin in the caller's core.Graph.
type Arc struct {
	Source int
	Dest   int
	Weight float64
	Label  string
}

// compiledGraph is an immutable, dense-integer view of a core.Graph: state
// v's out-arcs are out[v]. Building it once lets every later stage
// (shortest-path tree, sidetracks, heaps) index by plain int instead of
// walking core.Graph's locked maps.
type compiledGraph struct {
	out [][]*Arc
}

func newCompiledGraph(n int) *compiledGraph {
	return &compiledGraph{out: make([][]*Arc, n)}
}

func (cg *compiledGraph) n() int { return len(cg.out) }

// reverse returns a compiledGraph with every arc's source and dest
// swapped; weight and label are preserved.
func (cg *compiledGraph) reverse() *compiledGraph {
	rev := newCompiledGraph(cg.n())
	for _, arcs := range cg.out {
		for _, a := range arcs {
			rev.out[a.Dest] = append(rev.out[a.Dest], &Arc{
				Source: a.Dest,
				Dest:   a.Source,
				Weight: a.Weight,
				Label:  a.Label,
			})
		}
	}
	return rev
}

// compile maps g's vertex IDs onto dense integers 0..N-1 (in the same
// sorted order core.Graph.Vertices() already guarantees, so compilation is
// deterministic) and copies every edge into the resulting compiledGraph.
func compile(g *core.Graph) (cg *compiledGraph, ids []string, index map[string]int, err error) {
	ids = g.Vertices()
	index = make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	cg = newCompiledGraph(len(ids))
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, nil, ErrNegativeWeight
		}
		from, to := index[e.From], index[e.To]
		cg.out[from] = append(cg.out[from], &Arc{Source: from, Dest: to, Weight: e.Weight, Label: e.ID})
		if !e.Directed && e.From != e.To {
			cg.out[to] = append(cg.out[to], &Arc{Source: to, Dest: from, Weight: e.Weight, Label: e.ID})
		}
	}
	return cg, ids, index, nil
}
