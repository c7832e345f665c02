package frontier

// Queue is the FIFO frontier: Pop returns the earliest-inserted entry.
// Used by BFS and by both halves of Bidirectional search.
type Queue struct {
	items   []Entry
	pending map[string]int
	seq     uint64
}

// NewQueue returns an empty FIFO frontier.
func NewQueue() *Queue {
	return &Queue{pending: make(map[string]int)}
}

// Push appends e to the back of the queue.
func (q *Queue) Push(e Entry) {
	e.Seq = q.seq
	q.seq++
	q.items = append(q.items, e)
	q.pending[e.ID]++
}

// Pop removes and returns the front entry.
func (q *Queue) Pop() (Entry, bool) {
	if len(q.items) == 0 {
		return Entry{}, false
	}
	e := q.items[0]
	q.items = q.items[1:]
	q.release(e.ID)

	return e, true
}

// release drops one pending reference for id.
func (q *Queue) release(id string) {
	if q.pending[id] <= 1 {
		delete(q.pending, id)
		return
	}
	q.pending[id]--
}

// Len reports how many distinct vertices are pending.
func (q *Queue) Len() int { return len(q.pending) }

// Contains reports whether id is pending.
func (q *Queue) Contains(id string) bool {
	_, ok := q.pending[id]

	return ok
}

// Snapshot returns the queued entries front-to-back.
func (q *Queue) Snapshot() []Entry {
	out := make([]Entry, len(q.items))
	copy(out, q.items)

	return out
}
