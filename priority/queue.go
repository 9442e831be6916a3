package priority

import (
	"math"

	"github.com/davidvella/fibheap"
)

// Queue implements a keyed priority queue using a Fibonacci heap.
type Queue[K comparable] struct {
	heap    *fibheap.Heap[K]
	handles map[K]fibheap.Handle[K]
}

// NewQueue creates a new, empty priority queue. The options configure the
// underlying heap.
func NewQueue[K comparable](opts ...fibheap.Option) *Queue[K] {
	return &Queue[K]{
		heap:    fibheap.New[K](opts...),
		handles: make(map[K]fibheap.Handle[K]),
	}
}

// Len returns the number of items in the queue.
func (pq *Queue[K]) Len() int {
	return pq.heap.Size()
}

// Get returns the priority of key.
func (pq *Queue[K]) Get(key K) (float64, bool) {
	h, exists := pq.handles[key]
	if !exists {
		return 0, false
	}
	return h.Priority(), true
}

// Contains reports whether key is in the queue.
func (pq *Queue[K]) Contains(key K) bool {
	_, exists := pq.handles[key]
	return exists
}

// Set adds a new key or updates an existing key's priority. Lowering a
// priority costs O(1) amortized; raising it costs O(log n).
func (pq *Queue[K]) Set(key K, priority float64) error {
	if math.IsNaN(priority) {
		return fibheap.ErrInvalidPriority
	}

	if h, exists := pq.handles[key]; exists {
		if priority <= h.Priority() {
			return pq.heap.DecreaseKey(h, priority)
		}
		// Raising a priority is a delete followed by a fresh insert.
		if err := pq.heap.Delete(h); err != nil {
			return err
		}
	}

	h, err := pq.heap.Enqueue(key, priority)
	if err != nil {
		return err
	}
	pq.handles[key] = h
	return nil
}

// Remove removes the given key from the queue and reports whether it was
// present.
func (pq *Queue[K]) Remove(key K) bool {
	h, exists := pq.handles[key]
	if !exists {
		return false
	}
	delete(pq.handles, key)
	return pq.heap.Delete(h) == nil
}

// Pop removes and returns the key with the lowest priority.
func (pq *Queue[K]) Pop() (key K, priority float64, exists bool) {
	h, err := pq.heap.ExtractMin()
	if err != nil {
		var zeroK K
		return zeroK, 0, false
	}
	delete(pq.handles, h.Value())
	return h.Value(), h.Priority(), true
}

// Peek returns the key with the lowest priority without removing it.
func (pq *Queue[K]) Peek() (key K, priority float64, exists bool) {
	h, err := pq.heap.PeekMin()
	if err != nil {
		var zeroK K
		return zeroK, 0, false
	}
	return h.Value(), h.Priority(), true
}
