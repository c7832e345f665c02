// This file declares Entry and the Frontier contract shared by the
// Queue, Stack, and Heap containers.
package frontier

// Entry is one pending expansion on a frontier.
//
// The zero Cost/Estimate/Depth values describe the search source; the
// empty Parent marks the root of the parent chain used for path
// reconstruction.
type Entry struct {
	// ID is the vertex waiting to be expanded.
	ID string

	// Cost is g(n), the accumulated path cost from the source.
	Cost float64

	// Estimate is h(n), the heuristic estimate toward the goal.
	Estimate float64

	// Parent is the vertex this entry was discovered from ("" for the
	// source).
	Parent string

	// Depth is the edge count from the source along the discovery path.
	Depth int

	// Seq is the insertion ticket assigned by the container on Push.
	// Equal-key heap entries pop in Seq order (stable tie-break).
	Seq uint64
}

// Frontier is the container contract every search algorithm drives.
//
// Implementations are not safe for concurrent use; a search run is a
// single-threaded computation and owns its frontier exclusively.
type Frontier interface {
	// Push inserts an entry. The container assigns Entry.Seq.
	Push(e Entry)

	// Pop removes and returns the next entry per the container's
	// discipline. ok is false when the frontier is empty.
	Pop() (e Entry, ok bool)

	// Len reports how many distinct vertices are pending.
	Len() int

	// Contains reports whether id is pending.
	Contains(id string) bool

	// Snapshot returns the live entries in pop order. The slice is a
	// copy and safe to retain.
	Snapshot() []Entry
}
