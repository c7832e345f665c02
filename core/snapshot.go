// This file implements Snapshot, the immutable view of a Graph that a
// search run consumes. A Snapshot never changes after construction and
// shares no mutable state with its Graph.
package core

import "sort"

// Arc is one traversable connection as seen from a fixed vertex.
type Arc struct {
	// To is the vertex on the far end of the arc.
	To string

	// Weight is the traversal cost of the arc.
	Weight float64
}

// Snapshot is a frozen copy of a Graph taken at "Start Search" time.
//
// All accessors are read-only and safe for concurrent use. Arc slices
// are pre-sorted by the far vertex's canvas position (X, then Y, then
// ID), which fixes the expansion order of every algorithm.
type Snapshot struct {
	directed  bool
	source    string
	goal      string
	order     []string
	heuristic map[string]float64
	out       map[string][]Arc
	in        map[string][]Arc
	minWeight float64
}

// Snapshot freezes the current graph state.
// Complexity: O(V log V + E log E) for the ordering passes.
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		directed:  g.directed,
		source:    g.source,
		goal:      g.goal,
		order:     g.sortedIDs(),
		heuristic: make(map[string]float64, len(g.vertices)),
		out:       make(map[string][]Arc, len(g.vertices)),
	}
	for id, v := range g.vertices {
		s.heuristic[id] = v.Heuristic
	}

	for from, bucket := range g.adjacency {
		arcs := make([]Arc, 0, len(bucket))
		for to, w := range bucket {
			arcs = append(arcs, Arc{To: to, Weight: w})
			if w < s.minWeight {
				s.minWeight = w
			}
		}
		g.sortArcs(arcs)
		s.out[from] = arcs
	}

	if g.directed {
		s.in = make(map[string][]Arc, len(g.vertices))
		for from, bucket := range g.adjacency {
			for to, w := range bucket {
				s.in[to] = append(s.in[to], Arc{To: from, Weight: w})
			}
		}
		for _, arcs := range s.in {
			g.sortArcs(arcs)
		}
	} else {
		// Undirected adjacency is symmetric already.
		s.in = s.out
	}

	return s
}

// sortArcs orders arcs by the far vertex's (X, Y, ID). Caller holds g.mu.
func (g *Graph) sortArcs(arcs []Arc) {
	sort.Slice(arcs, func(i, j int) bool {
		return g.less(g.vertices[arcs[i].To], g.vertices[arcs[j].To])
	})
}

// Directed reports the snapshot's edge orientation flag.
func (s *Snapshot) Directed() bool { return s.directed }

// Source returns the source vertex ID, or "" if none was set.
func (s *Snapshot) Source() string { return s.source }

// Goal returns the goal vertex ID, or "" if none was set.
func (s *Snapshot) Goal() string { return s.goal }

// Has reports whether id names a vertex in the snapshot.
func (s *Snapshot) Has(id string) bool {
	_, ok := s.heuristic[id]

	return ok
}

// VertexIDs returns every vertex ID in canvas order. The returned slice
// is a copy and may be retained by the caller.
func (s *Snapshot) VertexIDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)

	return ids
}

// VertexCount returns the number of vertices in the snapshot.
func (s *Snapshot) VertexCount() int { return len(s.order) }

// Heuristic returns h(id), or 0 for an unknown vertex.
func (s *Snapshot) Heuristic(id string) float64 { return s.heuristic[id] }

// Out returns the outgoing arcs of id in canvas order.
// The slice is shared internal state; callers must not modify it.
func (s *Snapshot) Out(id string) []Arc { return s.out[id] }

// In returns the arcs that reach id, each Arc.To naming the origin
// vertex, in canvas order. On undirected snapshots In equals Out.
// The slice is shared internal state; callers must not modify it.
func (s *Snapshot) In(id string) []Arc { return s.in[id] }

// Weight returns the weight of the arc from→to, if present.
func (s *Snapshot) Weight(from, to string) (float64, bool) {
	for _, a := range s.out[from] {
		if a.To == to {
			return a.Weight, true
		}
	}

	return 0, false
}

// HasNegativeWeight reports whether any arc carries a negative weight.
// Graph mutations reject negative weights, so this only fires for
// snapshots built by hand or by future loaders.
func (s *Snapshot) HasNegativeWeight() bool { return s.minWeight < 0 }
