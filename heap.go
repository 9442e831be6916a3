package fibheap

import (
	"fmt"
	"iter"
	"math"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Heap is a Fibonacci heap of values ordered by ascending float64 priority.
// The zero value is an empty heap ready to use. A Heap is not safe for
// concurrent use.
type Heap[T any] struct {
	min  *node[T] // root with the smallest priority
	size int

	logger   *zap.Logger
	recorder Recorder

	// Scratch space reused across consolidation passes.
	roots []*node[T]
	table []*node[T]
}

// New creates an empty heap configured by opts.
func New[T any](opts ...Option) *Heap[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Heap[T]{
		logger:   o.logger,
		recorder: o.recorder,
		roots:    make([]*node[T], 0, o.capacity),
	}
}

// Enqueue inserts value with the given priority and returns its handle.
func (h *Heap[T]) Enqueue(value T, priority float64) (Handle[T], error) {
	if math.IsNaN(priority) {
		h.reject(OpEnqueue, ErrInvalidPriority)
		return Handle[T]{}, ErrInvalidPriority
	}

	n := newNode(value, priority)
	h.min = spliceRings(h.min, n)
	h.size++

	h.record(OpEnqueue)
	return Handle[T]{n: n}, nil
}

// PeekMin returns the entry with the smallest priority without removing it.
func (h *Heap[T]) PeekMin() (Handle[T], error) {
	if h.IsEmpty() {
		return Handle[T]{}, ErrEmptyHeap
	}
	return Handle[T]{n: h.min}, nil
}

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[T]) IsEmpty() bool {
	return h.size == 0
}

// Size returns the number of entries in the heap.
func (h *Heap[T]) Size() int {
	return h.size
}

// ExtractMin removes and returns the entry with the smallest priority. The
// returned handle is stale but still reports the entry's value and priority.
func (h *Heap[T]) ExtractMin() (Handle[T], error) {
	if h.IsEmpty() {
		return Handle[T]{}, ErrEmptyHeap
	}

	n := h.extractMin()
	h.record(OpExtractMin)
	return Handle[T]{n: n}, nil
}

// DecreaseKey lowers the priority of the entry behind handle. Setting the
// same priority again is allowed. On an empty heap it returns ErrEmptyHeap.
//
// The handle must have been returned by this heap, or by a heap that was
// merged into it. This is not checked.
func (h *Heap[T]) DecreaseKey(handle Handle[T], priority float64) error {
	n := handle.n
	switch {
	case n == nil || n.removed:
		h.reject(OpDecreaseKey, ErrInvalidHandle)
		return ErrInvalidHandle
	case h.IsEmpty():
		h.reject(OpDecreaseKey, ErrEmptyHeap)
		return ErrEmptyHeap
	case math.IsNaN(priority):
		h.reject(OpDecreaseKey, ErrInvalidPriority)
		return ErrInvalidPriority
	case priority > n.priority:
		err := fmt.Errorf("%w: %v > %v", ErrPriorityIncreased, priority, n.priority)
		h.reject(OpDecreaseKey, err)
		return err
	}

	h.decreaseKey(n, priority)
	h.record(OpDecreaseKey)
	return nil
}

// Delete removes the entry behind handle from the heap. The same membership
// rule as for DecreaseKey applies, and an empty heap returns ErrEmptyHeap.
func (h *Heap[T]) Delete(handle Handle[T]) error {
	n := handle.n
	if n == nil || n.removed {
		h.reject(OpDelete, ErrInvalidHandle)
		return ErrInvalidHandle
	}
	if h.IsEmpty() {
		h.reject(OpDelete, ErrEmptyHeap)
		return ErrEmptyHeap
	}

	priority := n.priority
	h.decreaseKey(n, math.Inf(-1))
	h.extractMin()
	n.priority = priority
	h.record(OpDelete)
	return nil
}

// Merge returns a heap holding the entries of both a and b and leaves a and b
// empty. Both remain usable afterwards. Handles into a or b stay valid and
// must be used with the returned heap. The result keeps the options of a.
func Merge[T any](a, b *Heap[T]) *Heap[T] {
	switch {
	case a == nil && b == nil:
		return &Heap[T]{}
	case a == nil:
		a, b = b, nil
	case a == b:
		b = nil
	}

	result := &Heap[T]{
		min:      a.min,
		size:     a.size,
		logger:   a.logger,
		recorder: a.recorder,
	}
	a.min, a.size = nil, 0

	var otherSize int
	if b != nil {
		otherSize = b.size
		result.min = spliceRings(result.min, b.min)
		result.size += b.size
		b.min, b.size = nil, 0
	}

	if ce := result.debug("merged heaps"); ce != nil {
		ce.Write(zap.Int("left-size", result.size-otherSize), zap.Int("right-size", otherSize))
	}
	result.record(OpMerge)
	return result
}

// All returns an iterator over every entry in the heap in unspecified order.
// The heap must not be modified during iteration.
func (h *Heap[T]) All() iter.Seq[Handle[T]] {
	return func(yield func(Handle[T]) bool) {
		if h.min == nil {
			return
		}
		stack := []*node[T]{h.min}
		for len(stack) > 0 {
			first := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			curr := first
			for {
				if !yield(Handle[T]{n: curr}) {
					return
				}
				if curr.child != nil {
					stack = append(stack, curr.child)
				}
				curr = curr.next
				if curr == first {
					break
				}
			}
		}
	}
}

// extractMin removes the minimum of a non-empty heap and consolidates the
// remaining roots.
func (h *Heap[T]) extractMin() *node[T] {
	result := h.min
	h.size--

	if result.next == result {
		h.min = nil
	} else {
		h.min = result.next
		unlinkFromRing(result)
	}

	if child := result.child; child != nil {
		curr := child
		for {
			curr.parent = nil
			curr.marked = false
			curr = curr.next
			if curr == child {
				break
			}
		}
	}

	h.min = spliceRings(h.min, result.child)
	result.detach()

	if h.min != nil {
		h.consolidate()
	}

	h.assertInvariants()
	return result
}

// decreaseKey sets the priority of n without validation, cutting n from its
// parent when heap order no longer holds.
func (h *Heap[T]) decreaseKey(n *node[T], priority float64) {
	n.priority = priority

	if n.parent != nil && priority <= n.parent.priority {
		h.cut(n)
	}

	// <= keeps min on a root when a cut node ties with the old minimum.
	if priority <= h.min.priority {
		h.min = n
	}

	h.assertInvariants()
}

func (h *Heap[T]) record(op Operation) {
	if h.recorder == nil {
		return
	}
	h.recorder.RecordOperation(op)
	h.recorder.RecordSize(h.size)
}

func (h *Heap[T]) reject(op Operation, err error) {
	if ce := h.debug("rejected operation"); ce != nil {
		ce.Write(zap.String("op", string(op)), zap.Error(err))
	}
}

func (h *Heap[T]) debug(msg string) *zapcore.CheckedEntry {
	if h.logger == nil {
		return nil
	}
	return h.logger.Check(zap.DebugLevel, msg)
}
