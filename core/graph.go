// This file implements the mutating and querying methods of Graph.
// Locking: every exported method takes g.mu exactly once; helpers assume
// the caller holds it.
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a new vertex with the given ID and options.
// Returns ErrEmptyVertexID for an empty ID and ErrDuplicateVertex if the
// ID is present or was retired by an earlier RemoveVertex.
// Complexity: O(1)
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}
	if _, ok := g.retired[id]; ok {
		return fmt.Errorf("%w: %q was retired", ErrDuplicateVertex, id)
	}

	v := &Vertex{ID: id}
	for _, opt := range opts {
		opt(v)
	}
	g.vertices[id] = v

	return nil
}

// RemoveVertex deletes the vertex, all incident edges, and any role it
// held. The ID is retired and may not be added again.
// Complexity: O(V) for incident-edge cleanup.
func (g *Graph) RemoveVertex(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	delete(g.vertices, id)
	delete(g.adjacency, id)
	for from := range g.adjacency {
		delete(g.adjacency[from], id)
	}
	if g.source == id {
		g.source = ""
	}
	if g.goal == id {
		g.goal = ""
	}
	g.retired[id] = struct{}{}

	return nil
}

// AddEdge connects from→to with the given weight (use DefaultWeight when
// the user picked none). On an undirected graph the edge is traversable
// both ways. Re-adding an existing edge overwrites its weight.
// Returns ErrVertexNotFound, ErrSelfLoop, or ErrNegativeWeight.
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrNegativeWeight, from, to, weight)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if _, ok := g.vertices[to]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	g.setArc(from, to, weight)
	if !g.directed {
		g.setArc(to, from, weight)
	}

	return nil
}

// setArc records a single directed arc. Caller holds g.mu.
func (g *Graph) setArc(from, to string, weight float64) {
	bucket, ok := g.adjacency[from]
	if !ok {
		bucket = make(map[string]float64)
		g.adjacency[from] = bucket
	}
	bucket[to] = weight
}

// RemoveEdge deletes the edge from→to (and its mirror on undirected
// graphs). Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1)
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[from][to]; !ok {
		return fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}
	delete(g.adjacency[from], to)
	if !g.directed {
		delete(g.adjacency[to], from)
	}

	return nil
}

// SetWeight changes the weight of an existing edge.
// Returns ErrEdgeNotFound or ErrNegativeWeight.
func (g *Graph) SetWeight(from, to string, weight float64) error {
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrNegativeWeight, from, to, weight)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[from][to]; !ok {
		return fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}
	g.adjacency[from][to] = weight
	if !g.directed {
		g.adjacency[to][from] = weight
	}

	return nil
}

// SetHeuristic assigns h(v) for the given vertex.
func (g *Graph) SetHeuristic(id string, h float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	v.Heuristic = h

	return nil
}

// SetSource marks id as the search source, displacing any previous one.
func (g *Graph) SetSource(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	g.source = id

	return nil
}

// ClearSource removes the source role.
func (g *Graph) ClearSource() {
	g.mu.Lock()
	g.source = ""
	g.mu.Unlock()
}

// SetGoal marks id as the search goal, displacing any previous one.
func (g *Graph) SetGoal(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	g.goal = id

	return nil
}

// ClearGoal removes the goal role.
func (g *Graph) ClearGoal() {
	g.mu.Lock()
	g.goal = ""
	g.mu.Unlock()
}

// Directed reports the graph-wide edge orientation flag.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// HasVertex reports whether id names an existing vertex.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the named vertex.
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return *v, nil
}

// VertexIDs returns all vertex IDs in canvas order (X, then Y, then ID).
func (g *Graph) VertexIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedIDs()
}

// sortedIDs lists IDs in (X, Y, ID) order. Caller holds g.mu.
func (g *Graph) sortedIDs() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return g.less(g.vertices[ids[i]], g.vertices[ids[j]])
	})

	return ids
}

// less orders vertices left-to-right, top-to-bottom, then by ID.
func (g *Graph) less(a, b *Vertex) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.ID < b.ID
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of logical edges (an undirected edge
// counts once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var arcs int
	for _, bucket := range g.adjacency {
		arcs += len(bucket)
	}
	if !g.directed {
		return arcs / 2
	}

	return arcs
}

// Weight returns the weight of the edge from→to, if present.
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[from][to]

	return w, ok
}

// Source returns the current source vertex ID, or "" if unset.
func (g *Graph) Source() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.source
}

// Goal returns the current goal vertex ID, or "" if unset.
func (g *Graph) Goal() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.goal
}
