// Package frontier provides the three interchangeable frontier
// containers the search algorithms share: a FIFO Queue, a LIFO Stack,
// and a priority Heap with lazy decrease-key semantics.
//
// # What
//
//   - Entry: one pending expansion — vertex ID, accumulated cost g,
//     heuristic estimate h, parent ID, depth, and an insertion ticket.
//   - Frontier: the common contract (Push, Pop, Len, Contains,
//     Snapshot). Snapshot returns live entries in the exact order they
//     would be popped, which is what a trace Step displays as the
//     fringe.
//   - Queue: pops the earliest-inserted entry (BFS, Bidirectional).
//   - Stack: pops the most-recently-inserted entry (DFS, DLS, IDS).
//   - Heap: pops the entry with the smallest key, where the key is a
//     caller-supplied function of the Entry (UCS: g, Greedy: h, A*:
//     g+h). Ties resolve by insertion order, so runs are reproducible.
//
// # Decrease-key
//
//	The Heap never rewrites an entry in place. Pushing an ID that is
//	already pending with a strictly lower key records the new key as the
//	ID's best and inserts a fresh entry; Pop silently discards entries
//	whose key no longer matches the best known key for their ID. The
//	lower-key entry therefore always surfaces first, and stale entries
//	cost one skipped pop each.
//
// # Complexity
//
//   - Queue/Stack: O(1) amortized Push and Pop.
//   - Heap: O(log N) Push and Pop, N bounded by total pushes
//     (lazy strategy), O(N log N) Snapshot.
package frontier
