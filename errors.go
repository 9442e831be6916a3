package fibheap

import "errors"

var (
	// ErrEmptyHeap is returned by PeekMin and ExtractMin on an empty heap, and
	// by DecreaseKey and Delete when a live handle is used with an empty heap.
	ErrEmptyHeap = errors.New("fibheap: heap is empty")
	// ErrInvalidPriority is returned when a priority is NaN.
	ErrInvalidPriority = errors.New("fibheap: priority is NaN")
	// ErrPriorityIncreased is returned by DecreaseKey when the new priority is
	// larger than the current one.
	ErrPriorityIncreased = errors.New("fibheap: new priority is larger than the current priority")
	// ErrInvalidHandle is returned for zero handles and handles whose entry has
	// already been extracted or deleted.
	ErrInvalidHandle = errors.New("fibheap: handle does not refer to a live entry")
)
