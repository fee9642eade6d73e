package kshortest

import "container/heap"

// buildPathHeaps constructs H_T(v) for every state v, per spec.md §4.4: a
// persistent (path-copying) balanced min-heap over the sidetrack arcs
// reachable by continuing along the shortest-path tree from v to dest and
// branching off at most once. H_T(v) is H_T(parent(v)) with v's own
// cheapest sidetrack (arcHeaps[v][0], if any) inserted; states that
// contribute no sidetrack simply share their parent's tree outright - no
// allocation, no copy.
//
// Traversal runs parent-before-child over the tree so each insert always
// has its base already built, using an explicit stack instead of
// recursion since the tree can be as deep as the graph is large.
func buildPathHeaps(tree []*Arc, arcHeaps [][]*Arc, dest int) (*pathArena, []int) {
	n := len(tree)
	arena := newPathArena()
	roots := make([]int, n)
	for i := range roots {
		roots[i] = -1
	}

	children := make([][]int, n)
	for v := 0; v < n; v++ {
		if tree[v] != nil {
			p := tree[v].Dest
			children[p] = append(children[p], v)
		}
	}

	visited := make([]bool, n)
	stack := []int{dest}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true

		base := -1
		if v != dest && tree[v] != nil {
			base = roots[tree[v].Dest]
		}

		if len(arcHeaps[v]) == 0 {
			roots[v] = base
		} else {
			root := arcHeaps[v][0]
			// The node's own arc is arcHeaps[v]'s root; heapArr must hold
			// only the *tail* (everything else), independently re-heaped,
			// since slicing the root off a heap-ordered array does not
			// leave the remainder heap-ordered among itself.
			tail := arcHeap(append([]*Arc(nil), arcHeaps[v][1:]...))
			if len(tail) > 0 {
				heap.Init(&tail)
			}
			roots[v] = pushDown(arena, base, pathNode{arc: root, heapArr: tail, heapIdx: 0})
		}

		stack = append(stack, children[v]...)
	}

	return arena, roots
}

// pushDown persistently inserts node into the tree rooted at subtreeIdx
// (-1 for empty) and returns the index of the new root. The smaller of
// node and the current root becomes the new root; the larger is pushed
// down into whichever child subtree currently has fewer descendants, so
// the tree stays balanced by size rather than by an explicit rank field.
// Only the spine touched by the insertion is copied; the sibling subtree
// is shared unchanged with the tree being inserted into.
func pushDown(arena *pathArena, subtreeIdx int, node pathNode) int {
	if subtreeIdx == -1 {
		node.left, node.right = -1, -1
		node.nDescend = 1
		return arena.alloc(node)
	}

	cur := arena.get(subtreeIdx)

	var newRoot, sinking pathNode
	if node.arc.Weight < cur.arc.Weight {
		newRoot, sinking = node, *cur
	} else {
		newRoot, sinking = *cur, node
	}

	leftND, rightND := 0, 0
	if cur.left != -1 {
		leftND = arena.get(cur.left).nDescend
	}
	if cur.right != -1 {
		rightND = arena.get(cur.right).nDescend
	}
	goLeft := cur.left == -1 || (cur.right != -1 && rightND > leftND)

	newRoot.nDescend = cur.nDescend + 1
	if goLeft {
		newRoot.left = pushDown(arena, cur.left, sinking)
		newRoot.right = cur.right
	} else {
		newRoot.right = pushDown(arena, cur.right, sinking)
		newRoot.left = cur.left
	}
	return arena.alloc(newRoot)
}
