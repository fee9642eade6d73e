package kshortest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortestPathTreeDist(t *testing.T) {
	cg := newCompiledGraph(3)
	cg.out[0] = []*Arc{{Source: 0, Dest: 1, Weight: 1, Label: "a"}}
	cg.out[1] = []*Arc{{Source: 1, Dest: 2, Weight: 2, Label: "b"}}

	dist, tree := shortestPathTree(cg, 2)
	require.Equal(t, 0.0, dist[2])
	require.Equal(t, 2.0, dist[1])
	require.Equal(t, 3.0, dist[0])
	require.Nil(t, tree[2])
	require.Equal(t, "b", tree[1].Label)
	require.Equal(t, "a", tree[0].Label)
}

func TestShortestPathTreeUnreachable(t *testing.T) {
	cg := newCompiledGraph(2)
	dist, tree := shortestPathTree(cg, 1)
	require.True(t, math.IsInf(dist[0], 1))
	require.Nil(t, tree[0])
}

func TestSidetrackGraphExcludesTreeArcAndUnreachable(t *testing.T) {
	cg := newCompiledGraph(3)
	cg.out[0] = []*Arc{
		{Source: 0, Dest: 1, Weight: 1, Label: "tree"},
		{Source: 0, Dest: 1, Weight: 10, Label: "sidetrack"},
		{Source: 0, Dest: 2, Weight: 3, Label: "dead"}, // state 2 cannot reach dest
	}
	dist, tree := shortestPathTree(cg, 1)
	st := sidetrackGraph(cg, tree, dist)

	require.Len(t, st.out[0], 1)
	require.Equal(t, "sidetrack", st.out[0][0].Label)
	require.Equal(t, 9.0, st.out[0][0].Weight) // 10 + dist[1](0) - dist[0](1)
}

func TestArcHeapOrdersByWeight(t *testing.T) {
	st := newCompiledGraph(1)
	st.out[0] = []*Arc{
		{Weight: 5, Label: "c"},
		{Weight: 1, Label: "a"},
		{Weight: 3, Label: "b"},
	}
	heaps := buildArcHeaps(st)
	require.Equal(t, "a", heaps[0][0].Label)
}

func TestPathArenaAllocAndGet(t *testing.T) {
	a := newPathArena()
	i1 := a.alloc(pathNode{arc: &Arc{Label: "x"}, left: -1, right: -1})
	i2 := a.alloc(pathNode{arc: &Arc{Label: "y"}, left: -1, right: -1})
	require.Equal(t, "x", a.get(i1).arc.Label)
	require.Equal(t, "y", a.get(i2).arc.Label)
	require.Nil(t, a.get(-1))
}

func TestBuildPathHeapsSharesWhenNoSidetrack(t *testing.T) {
	// tree: 0 -> 1 -> 2 (2 is dest); only state 0 has a sidetrack.
	tree := []*Arc{
		{Source: 0, Dest: 1, Label: "t01"},
		{Source: 1, Dest: 2, Label: "t12"},
		nil,
	}
	arcHeaps := [][]*Arc{
		{{Source: 0, Dest: 2, Weight: 4, Label: "sidetrack"}},
		nil,
		nil,
	}
	arena, roots := buildPathHeaps(tree, arcHeaps, 2)
	require.Equal(t, -1, roots[2])
	require.Equal(t, -1, roots[1], "state 1 contributes no sidetrack and inherits dest's empty tree")
	require.NotEqual(t, -1, roots[0])
	require.Equal(t, "sidetrack", arena.get(roots[0]).arc.Label)
}

func TestBuildPathHeapsTailExcludesRoot(t *testing.T) {
	// state 0 contributes two sidetracks; the node built for it must
	// expose the cheaper one as arc and the other as its heapArr tail,
	// never the same arc in both places.
	tree := []*Arc{nil}
	st := newCompiledGraph(1)
	st.out[0] = []*Arc{
		{Source: 0, Dest: 1, Weight: 5, Label: "expensive"},
		{Source: 0, Dest: 1, Weight: 1, Label: "cheap"},
	}
	arcHeaps := buildArcHeaps(st)

	arena, roots := buildPathHeaps(tree, arcHeaps, 0)
	node := arena.get(roots[0])
	require.Equal(t, "cheap", node.arc.Label)
	require.Len(t, node.heapArr, 1)
	require.Equal(t, "expensive", node.heapArr[0].Label)
}
