package frontier

import (
	"container/heap"
	"sort"
)

// KeyFunc derives the ordering key of an entry: g for UCS, h for Greedy,
// g+h for A*. Smaller keys pop first.
type KeyFunc func(Entry) float64

// Heap is the priority frontier with lazy decrease-key semantics.
//
// Pushing an ID that is already pending with a strictly lower key makes
// the new entry current; the old one goes stale and is skipped when it
// eventually surfaces. Equal keys pop in insertion order.
type Heap struct {
	key   KeyFunc
	items heapItems
	best  map[string]float64
	seq   uint64
}

// NewHeap returns an empty priority frontier ordered by key.
func NewHeap(key KeyFunc) *Heap {
	return &Heap{
		key:  key,
		best: make(map[string]float64),
	}
}

// Push inserts e, keyed by the heap's KeyFunc. If e.ID is already
// pending, the lower of the two keys becomes the ID's current key and
// the other entry goes stale.
func (h *Heap) Push(e Entry) {
	e.Seq = h.seq
	h.seq++
	k := h.key(e)
	if cur, ok := h.best[e.ID]; !ok || k < cur {
		h.best[e.ID] = k
	}
	heap.Push(&h.items, heapItem{entry: e, key: k})
}

// Pop removes and returns the live entry with the smallest key,
// discarding stale entries along the way.
func (h *Heap) Pop() (Entry, bool) {
	for h.items.Len() > 0 {
		it := heap.Pop(&h.items).(heapItem)
		cur, ok := h.best[it.entry.ID]
		if !ok || it.key != cur {
			// Stale: a cheaper entry superseded this one, or the ID was
			// already extracted.
			continue
		}
		delete(h.best, it.entry.ID)

		return it.entry, true
	}

	return Entry{}, false
}

// Len reports how many distinct vertices are pending.
func (h *Heap) Len() int { return len(h.best) }

// Contains reports whether id is pending.
func (h *Heap) Contains(id string) bool {
	_, ok := h.best[id]

	return ok
}

// Key returns the current best key recorded for id.
func (h *Heap) Key(id string) (float64, bool) {
	k, ok := h.best[id]

	return k, ok
}

// Snapshot returns one live entry per pending vertex — the entry whose
// key matches the vertex's current best — sorted by (key, Seq), i.e. in
// pop order. Stale entries are excluded.
func (h *Heap) Snapshot() []Entry {
	chosen := make(map[string]heapItem, len(h.best))
	for _, it := range h.items {
		cur, ok := h.best[it.entry.ID]
		if !ok || it.key != cur {
			continue
		}
		if prev, ok := chosen[it.entry.ID]; !ok || it.entry.Seq < prev.entry.Seq {
			chosen[it.entry.ID] = it
		}
	}

	out := make([]Entry, 0, len(chosen))
	keys := make(map[string]float64, len(chosen))
	for id, it := range chosen {
		out = append(out, it.entry)
		keys[id] = it.key
	}
	sort.Slice(out, func(i, j int) bool {
		ki, kj := keys[out[i].ID], keys[out[j].ID]
		if ki != kj {
			return ki < kj
		}

		return out[i].Seq < out[j].Seq
	})

	return out
}

// heapItem pins the key computed at push time to its entry.
type heapItem struct {
	entry Entry
	key   float64
}

// heapItems is a min-heap of heapItem ordered by (key, Seq).
type heapItems []heapItem

func (h heapItems) Len() int { return len(h) }

func (h heapItems) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}

	return h[i].entry.Seq < h[j].entry.Seq
}

func (h heapItems) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *heapItems) Push(x interface{}) { *h = append(*h, x.(heapItem)) }

func (h *heapItems) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
