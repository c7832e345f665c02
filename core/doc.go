// Package core defines the central Graph, Vertex, and Edge types of the
// search engine, and the immutable Snapshot a search run consumes.
//
// # What
//
//   - Graph: the live, editable graph owned by the editing collaborator.
//     Mutations (vertices, edges, weights, heuristics, source/goal roles)
//     are guarded by a sync.RWMutex, so UI code may edit concurrently
//     with reads.
//   - Vertex: string ID, 2D position, heuristic value. Positions are
//     opaque to the engine except as a deterministic ordering key.
//   - Edge: From→To with a float64 weight (default 1). Directedness is a
//     graph-wide flag; undirected edges are traversable both ways with
//     the same weight.
//   - Snapshot: a frozen, read-only copy produced by Graph.Snapshot() at
//     "Start Search" time. Forward and reverse adjacency are pre-sorted
//     by neighbor position (X, then Y, then ID), so every algorithm
//     expands neighbors left-to-right, exactly as drawn.
//
// # Invariants
//
//   - Vertex IDs are unique and never reused within a Graph's lifetime:
//     removing a vertex retires its ID permanently.
//   - At most one source and at most one goal at any time; assigning a
//     new one displaces the old.
//   - Every edge endpoint references an existing vertex; self-loops are
//     rejected; weights must be non-negative.
//
// # Determinism
//
//	Snapshot.VertexIDs, Snapshot.Out, and Snapshot.In return vertices and
//	arcs in (X, Y, ID) order. Two snapshots of an unchanged graph are
//	identical, which is what makes repeated search runs reproducible.
//
// # Errors
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrDuplicateVertex - ID already present, or retired by a removal.
//	ErrVertexNotFound  - operation referenced a non-existent vertex.
//	ErrEdgeNotFound    - operation referenced a non-existent edge.
//	ErrNegativeWeight  - edge weight below zero.
//	ErrSelfLoop        - edge with identical endpoints.
package core
