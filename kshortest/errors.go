package kshortest

import "errors"

// Sentinel errors returned by BestPaths.
var (
	// ErrNilGraph is returned when the input graph pointer is nil.
	ErrNilGraph = errors.New("kshortest: graph is nil")

	// ErrEmptyGraph is returned when the input graph has no vertices.
	ErrEmptyGraph = errors.New("kshortest: graph has no vertices")

	// ErrVertexNotFound is returned when source or dest does not name a
	// vertex of the graph.
	ErrVertexNotFound = errors.New("kshortest: vertex not found")

	// ErrInvalidK is returned when k < 1.
	ErrInvalidK = errors.New("kshortest: k must be >= 1")

	// ErrNegativeWeight is returned when the graph contains a negative
	// edge weight; Eppstein's algorithm assumes non-negative weights.
	ErrNegativeWeight = errors.New("kshortest: negative edge weight")
)
