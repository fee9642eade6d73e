package kshortest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/core"
)

// BestPaths reports the k lowest-cost source->dest paths of g, in
// ascending cost order, to v. All state for a single call - the compiled
// graph, its shortest-path tree, the sidetrack heaps - lives on the call
// stack and is discarded when BestPaths returns; nothing is shared
// between concurrent calls.
func BestPaths(g *core.Graph, source, dest string, k int, v Visitor, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return ErrEmptyGraph
	}
	if k < 1 {
		return ErrInvalidK
	}
	if v == nil {
		return fmt.Errorf("kshortest: visitor is nil")
	}

	cg, _, index, err := compile(g)
	if err != nil {
		return err
	}
	srcIdx, ok := index[source]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}
	dstIdx, ok := index[dest]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, dest)
	}

	dist, tree := shortestPathTree(cg, dstIdx)
	if math.IsInf(dist[srcIdx], 1) {
		// dest is unreachable from source: zero paths, not an error.
		return nil
	}

	o := buildOptions(opts)

	st := sidetrackGraph(cg, tree, dist)
	arcHeaps := buildArcHeaps(st)
	arena, roots := buildPathHeaps(tree, arcHeaps, dstIdx)

	enumerate(tree, dist, arena, roots, srcIdx, dstIdx, k, dist[srcIdx], v, o)
	return nil
}
