package fibheap

import "go.uber.org/zap"

// cut moves n to the root list, then keeps cutting ancestors for as long as
// they were already marked. The first unmarked non-root ancestor gets marked.
func (h *Heap[T]) cut(n *node[T]) {
	cascaded := 0
	for {
		n.marked = false
		parent := n.parent
		if parent == nil {
			break
		}

		if parent.child == n {
			if n.next != n {
				parent.child = n.next
			} else {
				parent.child = nil
			}
		}
		unlinkFromRing(n)
		parent.degree--

		n.parent = nil
		h.min = spliceRings(h.min, n)

		if !parent.marked {
			if parent.parent != nil {
				parent.marked = true
			}
			break
		}
		cascaded++
		n = parent
	}

	if h.recorder != nil {
		h.recorder.RecordCut(cascaded)
	}
	if cascaded > 0 {
		if ce := h.debug("cascading cut"); ce != nil {
			ce.Write(zap.Int("depth", cascaded))
		}
	}
}
