package frontier

// Stack is the LIFO frontier: Pop returns the most-recently-inserted
// entry. Used by DFS, DLS, and each IDS iteration.
type Stack struct {
	items   []Entry
	pending map[string]int
	seq     uint64
}

// NewStack returns an empty LIFO frontier.
func NewStack() *Stack {
	return &Stack{pending: make(map[string]int)}
}

// Push places e on top of the stack.
func (s *Stack) Push(e Entry) {
	e.Seq = s.seq
	s.seq++
	s.items = append(s.items, e)
	s.pending[e.ID]++
}

// Pop removes and returns the top entry.
func (s *Stack) Pop() (Entry, bool) {
	n := len(s.items)
	if n == 0 {
		return Entry{}, false
	}
	e := s.items[n-1]
	s.items = s.items[:n-1]
	s.release(e.ID)

	return e, true
}

// release drops one pending reference for id.
func (s *Stack) release(id string) {
	if s.pending[id] <= 1 {
		delete(s.pending, id)
		return
	}
	s.pending[id]--
}

// Len reports how many distinct vertices are pending.
func (s *Stack) Len() int { return len(s.pending) }

// Contains reports whether id is pending.
func (s *Stack) Contains(id string) bool {
	_, ok := s.pending[id]

	return ok
}

// Snapshot returns the stacked entries top-first (pop order).
func (s *Stack) Snapshot() []Entry {
	out := make([]Entry, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		out = append(out, s.items[i])
	}

	return out
}
