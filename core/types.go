// This file declares Vertex, Edge, Graph, GraphOption, VertexOption,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates the ID is already present or was
	// retired by a removal (IDs are never reused within one graph).
	ErrDuplicateVertex = errors.New("core: vertex ID already used")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// DefaultWeight is the weight an edge carries when none is chosen by the
// editing collaborator.
const DefaultWeight = 1.0

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph. X and Y place it
// on the editing canvas; the engine reads them only as an ordering key.
// Heuristic is the estimated remaining cost to the goal (default 0).
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// X, Y is the 2D position assigned by the editing collaborator.
	X, Y float64

	// Heuristic is h(v), used by Greedy and A*.
	Heuristic float64
}

// Edge represents a connection between two vertices.
//
// Directedness is inherited from the Graph: on an undirected graph the
// edge is logically traversable both ways with the same Weight.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the traversal cost, always >= 0.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges of the Graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// VertexOption configures properties of individual vertices when added.
type VertexOption func(*Vertex)

// WithPosition places the vertex at (x, y) on the canvas.
func WithPosition(x, y float64) VertexOption {
	return func(v *Vertex) { v.X, v.Y = x, y }
}

// WithHeuristic sets the vertex's heuristic value h(v).
func WithHeuristic(h float64) VertexOption {
	return func(v *Vertex) { v.Heuristic = h }
}

// Graph is the live, editable graph data structure.
//
// It holds the vertex catalog, a weighted adjacency map, and the
// source/goal role assignments. A single RWMutex guards all state: the
// editing collaborator mutates, everything else reads. Search runs never
// touch a Graph directly; they consume the value returned by Snapshot().
type Graph struct {
	mu sync.RWMutex

	// directed is the graph-wide edge orientation flag.
	directed bool

	// vertices maps vertex ID → Vertex.
	vertices map[string]*Vertex

	// adjacency[(from)ID][(to)ID] = weight. For undirected graphs every
	// edge is stored under both endpoints with the same weight.
	adjacency map[string]map[string]float64

	// retired holds IDs of removed vertices; they may never come back.
	retired map[string]struct{}

	// Role assignments; empty string means unset.
	source string
	goal   string
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected with no source and no goal.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]float64),
		retired:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
