package pq

// heapNode pairs an entry with its insertion sequence number. seq only
// breaks ties between equal priorities.
type heapNode struct {
	entry Entry
	seq   uint64
}

// HeapQueue is a max-priority queue backed by a binary heap stored in a
// slice. Insert and ExtractMax are O(log n).
//
// Entries with equal priority come out in insertion order.
type HeapQueue struct {
	nodes   []heapNode
	nextSeq uint64
}

// NewHeapQueue creates an empty heap queue.
func NewHeapQueue() *HeapQueue {
	return &HeapQueue{
		nodes: make([]heapNode, 0),
	}
}

// Len returns the number of entries in the queue.
func (h *HeapQueue) Len() int {
	return len(h.nodes)
}

// Insert places the entry in the next free slot and sifts it up.
func (h *HeapQueue) Insert(label string, priority int) {
	h.nodes = append(h.nodes, heapNode{
		entry: Entry{Label: label, Priority: priority},
		seq:   h.nextSeq,
	})
	h.nextSeq++
	h.up(len(h.nodes) - 1)
}

// ExtractMax removes and returns the label at the root.
func (h *HeapQueue) ExtractMax() (string, bool) {
	if len(h.nodes) == 0 {
		return "", false
	}

	root := h.nodes[0]
	last := len(h.nodes) - 1
	h.nodes[0] = h.nodes[last]
	h.nodes[last] = heapNode{}
	h.nodes = h.nodes[:last]
	if last > 0 {
		h.down(0)
	}
	return root.entry.Label, true
}

// outranks reports whether the node at i must sit above the node at j.
func (h *HeapQueue) outranks(i, j int) bool {
	a, b := h.nodes[i], h.nodes[j]
	if a.entry.Priority != b.entry.Priority {
		return a.entry.Priority > b.entry.Priority
	}
	return a.seq < b.seq
}

func (h *HeapQueue) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
}

// up moves the node at index i towards the root while it outranks its parent.
func (h *HeapQueue) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.outranks(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the node at index i towards the leaves, always swapping with
// the higher ranked child.
func (h *HeapQueue) down(i int) {
	n := len(h.nodes)
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && h.outranks(left, largest) {
			largest = left
		}
		if right < n && h.outranks(right, largest) {
			largest = right
		}
		if largest == i {
			return
		}

		h.swap(i, largest)
		i = largest
	}
}
