// Package search defines the Algorithm selector, run options, and
// sentinel errors shared by the eight strategies.
package search

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for search execution.
var (
	// ErrNilSnapshot is returned if a nil snapshot is passed to a run.
	ErrNilSnapshot = errors.New("search: snapshot is nil")

	// ErrNoSource is returned when the snapshot carries no source vertex.
	ErrNoSource = errors.New("search: no source vertex set")

	// ErrNoGoal is returned when the snapshot carries no goal vertex.
	ErrNoGoal = errors.New("search: no goal vertex set")

	// ErrNegativeWeight is returned when a cost-driven algorithm (UCS,
	// A*) is handed a snapshot containing a negative edge weight.
	ErrNegativeWeight = errors.New("search: negative edge weight")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownAlgorithm is returned by Run for an unmapped selector.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm is the closed selector over the eight search strategies.
type Algorithm int

const (
	// AlgorithmBFS selects breadth-first search.
	AlgorithmBFS Algorithm = iota

	// AlgorithmDFS selects depth-first search.
	AlgorithmDFS

	// AlgorithmDLS selects depth-limited search.
	AlgorithmDLS

	// AlgorithmIDS selects iterative deepening search.
	AlgorithmIDS

	// AlgorithmUCS selects uniform cost search.
	AlgorithmUCS

	// AlgorithmBidirectional selects bidirectional search.
	AlgorithmBidirectional

	// AlgorithmGreedy selects greedy best-first search.
	AlgorithmGreedy

	// AlgorithmAStar selects A* search.
	AlgorithmAStar
)

// String returns the display name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmBFS:
		return "BFS"
	case AlgorithmDFS:
		return "DFS"
	case AlgorithmDLS:
		return "DLS"
	case AlgorithmIDS:
		return "IDS"
	case AlgorithmUCS:
		return "UCS"
	case AlgorithmBidirectional:
		return "Bidirectional"
	case AlgorithmGreedy:
		return "Greedy"
	case AlgorithmAStar:
		return "A*"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a display name (case-insensitive, with the usual
// aliases) back onto the enum.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first":
		return AlgorithmBFS, nil
	case "dfs", "depth-first":
		return AlgorithmDFS, nil
	case "dls", "depth-limited":
		return AlgorithmDLS, nil
	case "ids", "iterative-deepening":
		return AlgorithmIDS, nil
	case "ucs", "uniform-cost":
		return AlgorithmUCS, nil
	case "bidirectional":
		return AlgorithmBidirectional, nil
	case "greedy", "greedy-best-first":
		return AlgorithmGreedy, nil
	case "a*", "astar", "a-star":
		return AlgorithmAStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Default limits, matching the visualizer's historical behavior.
const (
	// DefaultDepthLimit is the DLS limit when WithDepthLimit is absent.
	DefaultDepthLimit = 5

	// DefaultMaxDepth is the deepest limit IDS will iterate to when
	// WithMaxDepth is absent.
	DefaultMaxDepth = 10
)

// Option configures a search run via functional arguments. An invalid
// Option (e.g. a negative limit) is recorded internally and surfaced as
// ErrOptionViolation when the run is invoked.
type Option func(*Options)

// Options holds the per-run parameters. Only DLS and IDS consume them;
// the other algorithms accept options for contract uniformity and
// still reject invalid ones.
type Options struct {
	// DepthLimit bounds DLS expansion depth.
	DepthLimit int

	// MaxDepth caps the IDS limit iteration.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DepthLimit=5 and MaxDepth=10.
func DefaultOptions() Options {
	return Options{
		DepthLimit: DefaultDepthLimit,
		MaxDepth:   DefaultMaxDepth,
	}
}

// WithDepthLimit bounds DLS to the given depth (0 expands only the
// source). Negative values violate the option contract.
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: DepthLimit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthLimit = d
	}
}

// WithMaxDepth caps the IDS depth iteration at the given limit.
// Negative values violate the option contract.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// buildOptions folds functional options over the defaults and surfaces
// any recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
