// Package priority implements a keyed priority queue that maintains a
// collection of keys ordered by a float64 priority. Each key appears at most
// once, so the queue doubles as an index of pending work.
//
// The queue is backed by a Fibonacci heap from the fibheap package, with a map
// from key to heap handle for O(1) key lookups. Lower priorities are served
// first.
//
// Key features:
//   - Generic implementation supporting any comparable key type
//   - O(1) insertion and peek operations
//   - O(1) amortized priority decreases
//   - O(log n) amortized pop, removal and priority increases
//   - O(1) key-based lookups
//
// Basic usage:
//
//	pq := priority.NewQueue[string]()
//
//	// Add items
//	pq.Set("task1", 5)
//	pq.Set("task2", 3)
//	pq.Set("task3", 7)
//
//	// Get highest priority item
//	key, p, exists := pq.Peek()
//	if exists {
//	    fmt.Printf("Highest priority: %s = %v\n", key, p)
//	}
//
//	// Remove and return highest priority item
//	key, p, exists = pq.Pop()
//
//	// Update priority
//	pq.Set("task1", 1)  // Updates existing key with new priority
//
//	// Remove specific key
//	pq.Remove("task2")
//
// Set rejects NaN priorities with fibheap.ErrInvalidPriority and leaves the
// queue unchanged.
package priority
