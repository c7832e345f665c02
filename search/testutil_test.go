package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/trace"
)

// vtx is a compact fixture vertex: positions drive deterministic
// expansion order, h feeds the informed searches.
type vtx struct {
	id   string
	x, y float64
	h    float64
}

// edg is a compact fixture edge.
type edg struct {
	from, to string
	w        float64
}

// buildSnap assembles a graph and freezes it with the given roles.
func buildSnap(t *testing.T, directed bool, vs []vtx, es []edg, source, goal string) *core.Snapshot {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, v := range vs {
		require.NoError(t, g.AddVertex(v.id, core.WithPosition(v.x, v.y), core.WithHeuristic(v.h)))
	}
	for _, e := range es {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w))
	}
	if source != "" {
		require.NoError(t, g.SetSource(source))
	}
	if goal != "" {
		require.NoError(t, g.SetGoal(goal))
	}

	return g.Snapshot()
}

// chainSnap builds the undirected chain A-B-C-... with unit weights,
// vertices spaced left to right, A as source and the last as goal.
func chainSnap(t *testing.T, ids ...string) *core.Snapshot {
	t.Helper()
	vs := make([]vtx, len(ids))
	for i, id := range ids {
		vs[i] = vtx{id: id, x: float64(i) * 100}
	}
	es := make([]edg, 0, len(ids)-1)
	for i := 0; i+1 < len(ids); i++ {
		es = append(es, edg{ids[i], ids[i+1], 1})
	}

	return buildSnap(t, false, vs, es, ids[0], ids[len(ids)-1])
}

// popSequence lists the nodes of frontier-extraction steps, in order.
func popSequence(tr *trace.Trace) []string {
	var nodes []string
	for i := 0; i < tr.Len(); i++ {
		s, _ := tr.At(i)
		switch s.Action {
		case trace.ActionExpand, trace.ActionGoalFound, trace.ActionDeadEnd, trace.ActionBacktrack:
			nodes = append(nodes, s.Node)
		}
	}

	return nodes
}

// terminalStep fetches the final step of a non-empty trace.
func terminalStep(t *testing.T, tr *trace.Trace) trace.Step {
	t.Helper()
	last, ok := tr.Terminal()
	require.True(t, ok, "trace must not be empty")

	return last
}

// requireMonotonicVisited asserts that each step's visited set extends
// the previous one, resetting only at Limit-Raised boundaries (IDS).
func requireMonotonicVisited(t *testing.T, tr *trace.Trace) {
	t.Helper()
	var prev []string
	for i := 0; i < tr.Len(); i++ {
		s, _ := tr.At(i)
		if s.Action == trace.ActionLimitRaised {
			prev = nil
			continue
		}
		require.GreaterOrEqual(t, len(s.Visited), len(prev),
			"step %d: visited set shrank", i)
		for j, id := range prev {
			require.Equal(t, id, s.Visited[j],
				"step %d: visited set is not an extension of step before", i)
		}
		prev = s.Visited
	}
}

// requireSimplePath asserts path has no repeated vertex and that every
// consecutive pair is a traversable arc of the snapshot.
func requireSimplePath(t *testing.T, s *core.Snapshot, path []string) {
	t.Helper()
	seen := make(map[string]bool, len(path))
	for _, id := range path {
		require.False(t, seen[id], "vertex %s repeats in path %v", id, path)
		seen[id] = true
	}
	for i := 0; i+1 < len(path); i++ {
		_, ok := s.Weight(path[i], path[i+1])
		require.True(t, ok, "missing edge %s→%s in path %v", path[i], path[i+1], path)
	}
}

// bruteForceCost enumerates every simple path source→goal and returns
// the minimum total weight. Exponential; for small fixtures only.
func bruteForceCost(s *core.Snapshot, from, goal string, visited map[string]bool) (float64, bool) {
	if from == goal {
		return 0, true
	}
	visited[from] = true
	defer delete(visited, from)

	best, found := 0.0, false
	for _, arc := range s.Out(from) {
		if visited[arc.To] {
			continue
		}
		rest, ok := bruteForceCost(s, arc.To, goal, visited)
		if !ok {
			continue
		}
		if !found || arc.Weight+rest < best {
			best, found = arc.Weight+rest, true
		}
	}

	return best, found
}
