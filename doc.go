// Package fibheap implements a priority queue backed by a Fibonacci heap, as
// described by Fredman and Tarjan. Values are ordered by ascending float64
// priority.
//
// Key features:
//   - Generic over the stored value type
//   - O(1) amortized Enqueue, PeekMin and DecreaseKey
//   - O(log n) amortized ExtractMin and Delete
//   - O(1) destructive Merge of two heaps
//   - Handles that detect use after their entry has been removed
//
// Fibonacci heaps pay off for algorithms dominated by key decreases, such as
// Dijkstra's shortest paths or Prim's minimum spanning tree, which run in
// O(m + n log n) with this heap instead of O(m log n) with a binary heap. See
// the graph package for both.
//
// Basic usage:
//
//	h := fibheap.New[string]()
//
//	a, _ := h.Enqueue("a", 5)
//	h.Enqueue("b", 3)
//
//	// Make "a" the minimum.
//	_ = h.DecreaseKey(a, 1)
//
//	for !h.IsEmpty() {
//	    e, _ := h.ExtractMin()
//	    fmt.Println(e.Value(), e.Priority())
//	}
//
// Implementation Details:
// The heap is a forest of heap-ordered trees whose roots form a circular,
// doubly-linked list. Every node stores its parent, one arbitrary child, its
// siblings, its degree and a mark bit. The heap tracks the root with the
// smallest priority.
//
// Enqueue and Merge splice rings together in constant time. ExtractMin removes
// the minimum, promotes its children to roots and consolidates the root list
// so that no two roots share a degree. DecreaseKey cuts a node that violates
// heap order and moves it to the root list; a parent losing its second child
// is cut as well (cascading cut), which keeps degrees logarithmic in subtree
// size. Delete decreases a key to negative infinity and extracts it.
//
// Every entry is its own allocation. Once an entry has left the heap, it and
// its value become garbage as soon as no handle refers to it. A Handle turns
// stale once its entry is extracted or deleted, and DecreaseKey and Delete
// reject stale handles with ErrInvalidHandle. Whether a live handle belongs to
// the heap it is used with is not checked.
//
// Build with the fibheapdebug tag to validate every invariant after each
// mutating operation.
package fibheap
