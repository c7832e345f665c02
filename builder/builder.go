package builder

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/searchtrace/core"
)

// Sentinel errors for topology construction.
var (
	// ErrTooFewVertices is returned when a factory's size parameter is
	// below its documented minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrUnknownGoal is returned when WithEuclideanHeuristic names a
	// vertex the topology does not contain.
	ErrUnknownGoal = errors.New("builder: heuristic goal not in graph")

	// ErrNilWeightFn is returned when WithWeight is handed nil.
	ErrNilWeightFn = errors.New("builder: nil weight function")
)

// Layout constants: fixed spacing keeps canvas order readable and
// stable across factories.
const (
	spacing    = 100.0 // distance between neighboring vertices
	ringRadius = 200.0 // circle radius for Cycle, Star, Complete

	centerID = "Center" // fixed hub ID, a deliberate naming exception
	vertexID = "v%d"    // "v0", "v1", ... for linear and ring layouts
	gridID   = "%d,%d"  // "r,c", row-major
)

// WeightFunc decides the weight of the edge between two vertex IDs.
type WeightFunc func(from, to string) float64

// Option configures a factory run. An invalid Option is recorded and
// surfaced when the factory is invoked.
type Option func(*config)

type config struct {
	weight   WeightFunc
	heurGoal string
	err      error
}

// WithWeight assigns edge weights through fn instead of the uniform
// core.DefaultWeight.
func WithWeight(fn WeightFunc) Option {
	return func(c *config) {
		if fn == nil {
			c.err = ErrNilWeightFn
			return
		}
		c.weight = fn
	}
}

// WithEuclideanHeuristic sets every vertex's heuristic to its
// straight-line distance from goalID, computed from the laid-out
// positions once the topology is complete.
func WithEuclideanHeuristic(goalID string) Option {
	return func(c *config) { c.heurGoal = goalID }
}

func buildConfig(opts []Option) (config, error) {
	c := config{
		weight: func(string, string) float64 { return core.DefaultWeight },
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.err != nil {
		return c, c.err
	}

	return c, nil
}

// Path builds the chain v0-v1-...-v{n-1} laid out left to right.
func Path(n int, opts ...Option) (*core.Graph, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("Path: n=%d (must be ≥ 2): %w", n, ErrTooFewVertices)
	}

	g := core.NewGraph()
	for i := 0; i < n; i++ {
		id := fmt.Sprintf(vertexID, i)
		if err = g.AddVertex(id, core.WithPosition(float64(i)*spacing, 0)); err != nil {
			return nil, fmt.Errorf("Path: %w", err)
		}
	}
	for i := 0; i+1 < n; i++ {
		if err = addEdge(g, cfg, fmt.Sprintf(vertexID, i), fmt.Sprintf(vertexID, i+1)); err != nil {
			return nil, fmt.Errorf("Path: %w", err)
		}
	}

	return finish(g, cfg)
}

// Cycle builds the ring v0-v1-...-v{n-1}-v0 on a circle.
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	if n < 3 {
		return nil, fmt.Errorf("Cycle: n=%d (must be ≥ 3): %w", n, ErrTooFewVertices)
	}

	g := core.NewGraph()
	if err = addRing(g, n, 0); err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}
	for i := 0; i < n; i++ {
		if err = addEdge(g, cfg, fmt.Sprintf(vertexID, i), fmt.Sprintf(vertexID, (i+1)%n)); err != nil {
			return nil, fmt.Errorf("Cycle: %w", err)
		}
	}

	return finish(g, cfg)
}

// Star builds a hub-and-spoke: "Center" plus n-1 leaves on a circle.
func Star(n int, opts ...Option) (*core.Graph, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("Star: n=%d (must be ≥ 2): %w", n, ErrTooFewVertices)
	}

	g := core.NewGraph()
	if err = g.AddVertex(centerID, core.WithPosition(ringRadius, ringRadius)); err != nil {
		return nil, fmt.Errorf("Star: %w", err)
	}
	if err = addRing(g, n-1, 0); err != nil {
		return nil, fmt.Errorf("Star: %w", err)
	}
	for i := 0; i < n-1; i++ {
		if err = addEdge(g, cfg, centerID, fmt.Sprintf(vertexID, i)); err != nil {
			return nil, fmt.Errorf("Star: %w", err)
		}
	}

	return finish(g, cfg)
}

// Grid builds a rows×cols 4-neighborhood grid with "r,c" IDs, columns
// along X and rows along Y.
func Grid(rows, cols int, opts ...Option) (*core.Graph, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: rows=%d cols=%d (each must be ≥ 1): %w",
			rows, cols, ErrTooFewVertices)
	}

	g := core.NewGraph()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := fmt.Sprintf(gridID, r, c)
			if err = g.AddVertex(id, core.WithPosition(float64(c)*spacing, float64(r)*spacing)); err != nil {
				return nil, fmt.Errorf("Grid: %w", err)
			}
		}
	}
	// Right then bottom neighbor per cell, row-major.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := fmt.Sprintf(gridID, r, c)
			if c+1 < cols {
				if err = addEdge(g, cfg, u, fmt.Sprintf(gridID, r, c+1)); err != nil {
					return nil, fmt.Errorf("Grid: %w", err)
				}
			}
			if r+1 < rows {
				if err = addEdge(g, cfg, u, fmt.Sprintf(gridID, r+1, c)); err != nil {
					return nil, fmt.Errorf("Grid: %w", err)
				}
			}
		}
	}

	return finish(g, cfg)
}

// Complete builds K_n on a circle, edges emitted in (i, j) order with
// i < j.
func Complete(n int, opts ...Option) (*core.Graph, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d (must be ≥ 1): %w", n, ErrTooFewVertices)
	}

	g := core.NewGraph()
	if err = addRing(g, n, 0); err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = addEdge(g, cfg, fmt.Sprintf(vertexID, i), fmt.Sprintf(vertexID, j)); err != nil {
				return nil, fmt.Errorf("Complete: %w", err)
			}
		}
	}

	return finish(g, cfg)
}

// addRing lays n vertices evenly on the ring circle, starting at angle
// phase, indices ascending clockwise from the rightmost point.
func addRing(g *core.Graph, n int, phase float64) error {
	for i := 0; i < n; i++ {
		angle := phase + 2*math.Pi*float64(i)/float64(n)
		x := ringRadius * (1 + math.Cos(angle))
		y := ringRadius * (1 + math.Sin(angle))
		if err := g.AddVertex(fmt.Sprintf(vertexID, i), core.WithPosition(x, y)); err != nil {
			return err
		}
	}

	return nil
}

// addEdge applies the configured weight function to one edge.
func addEdge(g *core.Graph, cfg config, from, to string) error {
	return g.AddEdge(from, to, cfg.weight(from, to))
}

// finish applies post-topology options, currently the Euclidean
// heuristic assignment.
func finish(g *core.Graph, cfg config) (*core.Graph, error) {
	if cfg.heurGoal == "" {
		return g, nil
	}
	goal, err := g.Vertex(cfg.heurGoal)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGoal, cfg.heurGoal)
	}
	for _, id := range g.VertexIDs() {
		v, verr := g.Vertex(id)
		if verr != nil {
			return nil, verr
		}
		h := math.Hypot(v.X-goal.X, v.Y-goal.Y)
		if verr = g.SetHeuristic(id, h); verr != nil {
			return nil, verr
		}
	}

	return g, nil
}
