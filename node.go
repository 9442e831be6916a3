package fibheap

// node is one tree node of the heap.
type node[T any] struct {
	value    T
	priority float64

	degree  int  // exact number of children
	marked  bool // lost a child since it last became a child; never set on roots
	removed bool // extracted or deleted; handles to it are stale

	parent *node[T] // nil for roots
	child  *node[T] // any member of the child ring
	next   *node[T] // sibling ring
	prev   *node[T]
}

// detach clears the structural fields of a node that has left the heap so the
// returned handle does not keep the rest of the forest reachable.
func (n *node[T]) detach() {
	n.removed = true
	n.parent = nil
	n.child = nil
	n.degree = 0
	n.marked = false
	n.next = n
	n.prev = n
}

func newNode[T any](value T, priority float64) *node[T] {
	n := &node[T]{value: value, priority: priority}
	n.next = n
	n.prev = n
	return n
}

// Handle is an opaque reference to an entry, returned by Enqueue and accepted by
// DecreaseKey and Delete. A Handle turns stale once its entry leaves the heap
// through ExtractMin or Delete; stale handles are rejected with ErrInvalidHandle
// but still report the value and the priority the entry had when it was
// removed.
type Handle[T any] struct {
	n *node[T]
}

// Value returns the payload of the entry.
func (h Handle[T]) Value() T {
	if h.n == nil {
		var zero T
		return zero
	}
	return h.n.value
}

// Priority returns the current priority of the entry. After Delete it is the
// priority the entry held before the call.
func (h Handle[T]) Priority() float64 {
	if h.n == nil {
		return 0
	}
	return h.n.priority
}

// Valid reports whether the entry is still held by a heap.
func (h Handle[T]) Valid() bool {
	return h.n != nil && !h.n.removed
}
