package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchtrace/search"
	"github.com/katalvlaran/searchtrace/trace"
)

func TestRun_DispatchesEveryAlgorithm(t *testing.T) {
	// A short chain every strategy can solve; each selector must produce
	// a successful trace through the single entry point.
	snap := chainSnap(t, "A", "B", "C")

	for _, algo := range []search.Algorithm{
		search.AlgorithmBFS,
		search.AlgorithmDFS,
		search.AlgorithmDLS,
		search.AlgorithmIDS,
		search.AlgorithmUCS,
		search.AlgorithmBidirectional,
		search.AlgorithmGreedy,
		search.AlgorithmAStar,
	} {
		tr, err := search.Run(algo, snap)
		require.NoError(t, err, algo.String())
		assert.True(t, tr.Found(), algo.String())
		assert.Equal(t, []string{"A", "B", "C"}, terminalStep(t, tr).Path, algo.String())
	}
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	snap := chainSnap(t, "A", "B")
	_, err := search.Run(search.Algorithm(99), snap)
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestRun_ValidationErrors(t *testing.T) {
	for _, algo := range []search.Algorithm{
		search.AlgorithmBFS, search.AlgorithmUCS, search.AlgorithmBidirectional,
	} {
		_, err := search.Run(algo, nil)
		assert.ErrorIs(t, err, search.ErrNilSnapshot, algo.String())
	}

	noSource := buildSnap(t, false,
		[]vtx{{id: "A"}, {id: "B", x: 100}},
		[]edg{{"A", "B", 1}},
		"", "B")
	_, err := search.Run(search.AlgorithmBFS, noSource)
	assert.ErrorIs(t, err, search.ErrNoSource)

	noGoal := buildSnap(t, false,
		[]vtx{{id: "A"}, {id: "B", x: 100}},
		[]edg{{"A", "B", 1}},
		"A", "")
	_, err = search.Run(search.AlgorithmAStar, noGoal)
	assert.ErrorIs(t, err, search.ErrNoGoal)
}

func TestRun_OptionViolationBeatsExecution(t *testing.T) {
	// Even algorithms that ignore the limits reject a broken option.
	snap := chainSnap(t, "A", "B")
	for _, algo := range []search.Algorithm{
		search.AlgorithmBFS, search.AlgorithmUCS, search.AlgorithmIDS,
	} {
		_, err := search.Run(algo, snap, search.WithMaxDepth(-3))
		assert.ErrorIs(t, err, search.ErrOptionViolation, algo.String())
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"bfs":                 search.AlgorithmBFS,
		"BFS":                 search.AlgorithmBFS,
		"breadth-first":       search.AlgorithmBFS,
		"depth-first":         search.AlgorithmDFS,
		"dls":                 search.AlgorithmDLS,
		"iterative-deepening": search.AlgorithmIDS,
		"uniform-cost":        search.AlgorithmUCS,
		"Bidirectional":       search.AlgorithmBidirectional,
		"greedy":              search.AlgorithmGreedy,
		"A*":                  search.AlgorithmAStar,
		"astar":               search.AlgorithmAStar,
		" a-star ":            search.AlgorithmAStar,
	}
	for name, want := range cases {
		got, err := search.ParseAlgorithm(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := search.ParseAlgorithm("dijkstra-ish")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestAlgorithmString_RoundTrip(t *testing.T) {
	for _, algo := range []search.Algorithm{
		search.AlgorithmBFS, search.AlgorithmDFS, search.AlgorithmDLS,
		search.AlgorithmIDS, search.AlgorithmUCS, search.AlgorithmBidirectional,
		search.AlgorithmGreedy, search.AlgorithmAStar,
	} {
		got, err := search.ParseAlgorithm(algo.String())
		require.NoError(t, err, algo.String())
		assert.Equal(t, algo, got)
	}
	assert.Equal(t, "Algorithm(42)", search.Algorithm(42).String())
}

func TestRun_SummaryMatchesTrace(t *testing.T) {
	snap := chainSnap(t, "A", "B", "C")

	tr, err := search.Run(search.AlgorithmBFS, snap)
	require.NoError(t, err)

	sum := tr.Summary()
	assert.Equal(t, tr.ID(), sum.RunID)
	assert.True(t, sum.Found)
	assert.Equal(t, []string{"A", "B", "C"}, sum.Path)
	assert.Equal(t, 2.0, sum.Cost)
	assert.Equal(t, tr.Len(), sum.Steps)
	assert.Equal(t, 3, sum.Expanded)
}

func TestRun_TraceIsReplayableData(t *testing.T) {
	// The trace must be complete and stable the moment Run returns:
	// reading it twice yields identical steps.
	snap := chainSnap(t, "A", "B", "C", "D")

	tr, err := search.Run(search.AlgorithmUCS, snap)
	require.NoError(t, err)

	first := make([]trace.Step, tr.Len())
	for i := range first {
		first[i], _ = tr.At(i)
	}
	for i := range first {
		again, err := tr.At(i)
		require.NoError(t, err)
		assert.Equal(t, first[i], again, "step %d changed between reads", i)
	}
}
