// Package builder generates deterministic canvas topologies for demos
// and fixtures: every factory lays vertices out with concrete (X, Y)
// positions, so expansion order — which follows canvas order — is the
// same on every run.
//
// What:
//
//   - Path(n): a straight left-to-right chain P_n (n ≥ 2)
//   - Cycle(n): a ring C_n on a circle (n ≥ 3)
//   - Star(n): center "Center" plus n-1 leaves (n ≥ 2)
//   - Grid(rows, cols): 4-neighborhood grid with "r,c" IDs (≥ 1 each)
//   - Complete(n): the complete graph K_n on a circle (n ≥ 1)
//
// Options:
//
//   - WithWeight(fn): per-edge weight from the endpoint IDs; the
//     default weighs every edge core.DefaultWeight
//   - WithEuclideanHeuristic(goalID): after the topology is laid out,
//     assigns each vertex the straight-line distance to goalID as its
//     heuristic — admissible for A* whenever edge weights are at least
//     the geometric distance they span
//
// Determinism:
//
//   - Stable vertex order (index-ascending, grids row-major) and stable
//     edge emission order for the same inputs
//
// Errors:
//
//   - ErrTooFewVertices  size below the factory's minimum
//   - ErrUnknownGoal     WithEuclideanHeuristic names an absent vertex
//   - ErrNilWeightFn     WithWeight handed a nil function
package builder
