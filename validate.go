package fibheap

import "fmt"

// Validate walks the whole forest and reports the first broken structural
// invariant, or nil. It runs in O(n) and is meant for tests and debugging.
func (h *Heap[T]) Validate() error {
	if h.size == 0 {
		if h.min != nil {
			return fmt.Errorf("empty heap has min %v", h.min.priority)
		}
		return nil
	}
	if h.min == nil {
		return fmt.Errorf("heap of size %d has no min", h.size)
	}
	if h.min.parent != nil {
		return fmt.Errorf("min %v is not a root", h.min.priority)
	}

	count := 0
	var walk func(first, parent *node[T]) error
	walk = func(first, parent *node[T]) error {
		curr := first
		siblings := 0
		for {
			count++
			siblings++
			if count > h.size {
				return fmt.Errorf("more than %d reachable entries", h.size)
			}
			if curr.removed {
				return fmt.Errorf("removed entry %v is reachable", curr.priority)
			}
			if curr.next.prev != curr || curr.prev.next != curr {
				return fmt.Errorf("ring broken at %v", curr.priority)
			}
			if curr.parent != parent {
				return fmt.Errorf("entry %v has wrong parent", curr.priority)
			}
			if parent == nil && curr.marked {
				return fmt.Errorf("root %v is marked", curr.priority)
			}
			if parent != nil && curr.priority < parent.priority {
				return fmt.Errorf("entry %v is smaller than its parent %v", curr.priority, parent.priority)
			}
			if curr.priority < h.min.priority {
				return fmt.Errorf("entry %v is smaller than min %v", curr.priority, h.min.priority)
			}
			if curr.child == nil && curr.degree != 0 {
				return fmt.Errorf("childless entry %v has degree %d", curr.priority, curr.degree)
			}
			if curr.child != nil {
				if err := walk(curr.child, curr); err != nil {
					return err
				}
			}
			curr = curr.next
			if curr == first {
				break
			}
		}
		if parent != nil && parent.degree != siblings {
			return fmt.Errorf("entry %v has degree %d but %d children", parent.priority, parent.degree, siblings)
		}
		return nil
	}

	if err := walk(h.min, nil); err != nil {
		return err
	}
	if count != h.size {
		return fmt.Errorf("size is %d but %d entries are reachable", h.size, count)
	}
	return nil
}

// assertInvariants panics on a broken invariant in builds tagged fibheapdebug.
func (h *Heap[T]) assertInvariants() {
	if !debugChecks {
		return
	}
	if err := h.Validate(); err != nil {
		panic("fibheap: " + err.Error())
	}
}
