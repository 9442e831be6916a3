package fibheap

import "go.uber.org/zap"

// consolidate links roots of equal degree until every root has a distinct
// degree, then points min at the smallest remaining root. The root list must
// not be empty.
func (h *Heap[T]) consolidate() {
	// Linking rewires the root ring, so walk a snapshot of it instead.
	roots := h.roots[:0]
	for curr := h.min; ; {
		roots = append(roots, curr)
		curr = curr.next
		if curr == h.min {
			break
		}
	}

	table := h.table[:0]
	links := 0
	for _, curr := range roots {
		for {
			for curr.degree >= len(table) {
				table = append(table, nil)
			}

			other := table[curr.degree]
			if other == nil {
				table[curr.degree] = curr
				break
			}
			table[other.degree] = nil

			parent, child := curr, other
			if other.priority < curr.priority {
				parent, child = other, curr
			}
			link(parent, child)
			links++

			curr = parent
		}
	}

	h.min = nil
	remaining := 0
	for _, root := range table {
		if root == nil {
			continue
		}
		remaining++
		// <= so that a tie settles on a node that is a root now.
		if h.min == nil || root.priority <= h.min.priority {
			h.min = root
		}
	}

	if h.recorder != nil {
		h.recorder.RecordConsolidation(remaining, links, len(table)-1)
	}
	if ce := h.debug("consolidated root list"); ce != nil {
		ce.Write(
			zap.Int("roots-before", len(roots)),
			zap.Int("roots-after", remaining),
			zap.Int("links", links),
			zap.Int("max-degree", len(table)-1),
		)
	}

	// Drop references so extracted nodes are not retained by scratch space.
	clear(roots)
	clear(table)
	h.roots = roots[:0]
	h.table = table[:0]
}

// link makes child, a root, the newest child of parent, also a root.
func link[T any](parent, child *node[T]) {
	unlinkFromRing(child)
	parent.child = spliceRings(parent.child, child)
	child.parent = parent
	child.marked = false
	parent.degree++
}
