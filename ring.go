package fibheap

// spliceRings joins the circular lists containing a and b and returns whichever
// of the two has the smaller priority. Either may be nil. The rings must be
// disjoint. The returned node is only meaningful as a minimum when a and b are
// the minima of their own rings.
func spliceRings[T any](a, b *node[T]) *node[T] {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}

	aNext := a.next
	a.next = b.next
	a.next.prev = a
	b.next = aNext
	b.next.prev = b

	if a.priority < b.priority {
		return a
	}
	return b
}

// unlinkFromRing removes n from its sibling ring and turns it into a
// singleton. The remaining ring is left consistent.
func unlinkFromRing[T any](n *node[T]) {
	n.next.prev = n.prev
	n.prev.next = n.next
	n.next = n
	n.prev = n
}
