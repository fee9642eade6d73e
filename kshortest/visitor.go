package kshortest

// Visitor receives the k best source->dest paths in increasing order of
// cost as BestPaths discovers them. Paths are reported edge by edge:
// StartPath opens a path, BestEdge/SidetrackEdge report its arcs in
// order from source to dest, and EndPath closes it. An arc reported via
// BestEdge lies on the shortest-path tree; one reported via SidetrackEdge
// is a sidetrack, an arc off that tree. Every sidetrack of the path is
// reported, each with its original weight.
type Visitor interface {
	// StartPath begins reporting the path ranked rank (1-based, rank 1
	// is the single shortest path) with total cost cost.
	StartPath(rank int, cost float64)
	// BestEdge reports a tree edge on the current path.
	BestEdge(a Arc)
	// SidetrackEdge reports a sidetrack edge, where the current path
	// leaves the shortest-path tree.
	SidetrackEdge(a Arc)
	// EndPath closes the path opened by the most recent StartPath.
	EndPath()
}

// Path is one fully materialized source->dest path: its arcs in order
// and their summed cost.
type Path struct {
	Arcs []Arc
	Cost float64
}

// CollectingVisitor accumulates every reported path in memory, in the
// order it receives them (which BestPaths guarantees is non-decreasing
// cost). It has no concept of a destination stream, unlike the printer
// this is modeled on - callers read Paths once BestPaths returns.
type CollectingVisitor struct {
	Paths []Path
	cur   Path
}

// NewCollectingVisitor returns a ready-to-use CollectingVisitor.
func NewCollectingVisitor() *CollectingVisitor {
	return &CollectingVisitor{}
}

func (c *CollectingVisitor) StartPath(rank int, cost float64) {
	c.cur = Path{Cost: cost}
}

func (c *CollectingVisitor) BestEdge(a Arc) {
	c.cur.Arcs = append(c.cur.Arcs, a)
}

func (c *CollectingVisitor) SidetrackEdge(a Arc) {
	c.cur.Arcs = append(c.cur.Arcs, a)
}

func (c *CollectingVisitor) EndPath() {
	c.Paths = append(c.Paths, c.cur)
	c.cur = Path{}
}
