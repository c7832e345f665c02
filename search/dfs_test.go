package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchtrace/search"
	"github.com/katalvlaran/searchtrace/trace"
)

func TestDFS_FindsGoalOnChain(t *testing.T) {
	snap := chainSnap(t, "A", "B", "C", "D")
	tr, err := search.DFS(snap)
	require.NoError(t, err)

	require.True(t, tr.Found())
	assert.Equal(t, []string{"A", "B", "C", "D"}, terminalStep(t, tr).Path)
	requireMonotonicVisited(t, tr)
}

func TestDFS_LeftmostFirst(t *testing.T) {
	// From A, the leftmost neighbor must be explored first even under a
	// LIFO frontier (neighbors are pushed in reverse canvas order).
	snap := buildSnap(t, false,
		[]vtx{
			{id: "A", x: 100, y: 0},
			{id: "left", x: 0, y: 100},
			{id: "right", x: 200, y: 100},
			{id: "G", x: 100, y: 200},
		},
		[]edg{{"A", "left", 1}, {"A", "right", 1}, {"left", "G", 1}, {"right", "G", 1}},
		"A", "G")

	tr, err := search.DFS(snap)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "left", "G"}, popSequence(tr))
}

func TestDFS_TerminatesOnCycle(t *testing.T) {
	// A-B-C-A cycle with the goal hanging off C. Visited-on-expansion
	// keeps the walk finite.
	snap := buildSnap(t, false,
		[]vtx{
			{id: "A", x: 0, y: 0},
			{id: "B", x: 100, y: 0},
			{id: "C", x: 50, y: 100},
			{id: "G", x: 50, y: 200},
		},
		[]edg{{"A", "B", 1}, {"B", "C", 1}, {"C", "A", 1}, {"C", "G", 1}},
		"A", "G")

	tr, err := search.DFS(snap)
	require.NoError(t, err)
	require.True(t, tr.Found())
	requireSimplePath(t, snap, terminalStep(t, tr).Path)
}

func TestDFS_DeadEndStep(t *testing.T) {
	// B is a cul-de-sac explored before the route to the goal.
	snap := buildSnap(t, true,
		[]vtx{
			{id: "A", x: 100, y: 0},
			{id: "B", x: 0, y: 100}, // leftmost: explored first, no way out
			{id: "C", x: 200, y: 100},
			{id: "G", x: 200, y: 200},
		},
		[]edg{{"A", "B", 1}, {"A", "C", 1}, {"C", "G", 1}},
		"A", "G")

	tr, err := search.DFS(snap)
	require.NoError(t, err)
	require.True(t, tr.Found())

	s, err := tr.At(1)
	require.NoError(t, err)
	assert.Equal(t, "B", s.Node)
	assert.Equal(t, trace.ActionDeadEnd, s.Action, "no outgoing arcs → dead end")
}

func TestDFS_BacktrackStep(t *testing.T) {
	// Triangle A-B-C plus goal off A's right side: expanding C finds
	// every neighbor already seen → Backtrack, not DeadEnd.
	snap := buildSnap(t, false,
		[]vtx{
			{id: "A", x: 100, y: 0},
			{id: "B", x: 0, y: 100},
			{id: "C", x: 50, y: 200},
			{id: "G", x: 300, y: 100},
		},
		[]edg{{"A", "B", 1}, {"B", "C", 1}, {"C", "A", 1}, {"A", "G", 1}},
		"A", "G")

	tr, err := search.DFS(snap)
	require.NoError(t, err)
	require.True(t, tr.Found())

	var sawBacktrack bool
	for i := 0; i < tr.Len(); i++ {
		s, _ := tr.At(i)
		if s.Node == "C" {
			assert.Equal(t, trace.ActionBacktrack, s.Action)
			sawBacktrack = true
		}
	}
	assert.True(t, sawBacktrack, "expected a Backtrack step at C")
}

func TestDFS_Exhausted(t *testing.T) {
	snap := buildSnap(t, true,
		[]vtx{{id: "A"}, {id: "G", x: 100}},
		[]edg{{"G", "A", 1}}, // only G→A; A cannot reach G
		"A", "G")

	tr, err := search.DFS(snap)
	require.NoError(t, err)
	assert.False(t, tr.Found())
	assert.Equal(t, trace.ActionExhausted, terminalStep(t, tr).Action)
}
