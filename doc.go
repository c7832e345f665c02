// Package searchtrace is an in-memory engine for watching classical
// graph-search algorithms run step by step.
//
// 🚀 What is searchtrace?
//
//	A small, deterministic library that brings together:
//		• Core primitives: build a weighted, heuristic-annotated graph and
//		  freeze it into an immutable Snapshot for a search run
//		• Frontiers: FIFO queue, LIFO stack, and a lazy decrease-key
//		  priority queue with a stable tie-break
//		• Eight search strategies: BFS, DFS, DLS, IDS, UCS,
//		  Bidirectional, Greedy Best-First, and A*
//		• Step traces: every frontier pop becomes one replayable Step
//		  (current node, fringe, visited set, partial path, action)
//		• Playback: an index cursor over a finished trace, with a
//		  speed-scaled interval for animation loops
//
// ✨ Why choose searchtrace?
//
//   - Deterministic – neighbor order and tie-breaks are fully specified,
//     so the same graph always yields the same trace
//   - Pure computation – a run completes synchronously and returns a
//     self-contained, read-only trace; no global state, no goroutines
//   - Uniform – every algorithm writes through the same recorder, so
//     every trace has the same shape for playback and statistics
//
// Everything is organized under six subpackages:
//
//	core/     — Graph, Vertex, Edge and the immutable Snapshot
//	frontier/ — Queue, Stack and Heap frontier containers
//	trace/    — Step, Recorder, Trace and run statistics
//	search/   — the eight algorithms behind one Run contract
//	playback/ — forward/backward stepping over a finished trace
//	builder/  — deterministic topology generators for tests and demos
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square; BFS from A visits B and C at depth one, then D.
//
//	go get github.com/katalvlaran/searchtrace
package searchtrace
