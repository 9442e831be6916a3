package fibheap

// Operation names a public heap operation for a Recorder.
type Operation string

// Operations reported to RecordOperation.
const (
	OpEnqueue     Operation = "enqueue"      // Enqueue
	OpExtractMin  Operation = "extract_min"  // ExtractMin
	OpDecreaseKey Operation = "decrease_key" // DecreaseKey
	OpDelete      Operation = "delete"       // Delete
	OpMerge       Operation = "merge"        // Merge
)

// Recorder receives structural events from a Heap. It is called synchronously
// on the heap's goroutine, so implementations must be cheap.
type Recorder interface {
	// RecordOperation is called once per successful public operation.
	RecordOperation(op Operation)
	// RecordConsolidation is called after each consolidation pass with the
	// number of roots left, the number of links performed and the largest
	// root degree.
	RecordConsolidation(roots, links, maxDegree int)
	// RecordCut is called for every decrease-key that cut its entry, with
	// the number of ancestors cut in cascade.
	RecordCut(cascaded int)
	// RecordSize reports the heap size after a mutation.
	RecordSize(size int)
}

type nopRecorder struct{}

func (nopRecorder) RecordOperation(Operation) {}
func (nopRecorder) RecordConsolidation(_, _, _ int) {}
func (nopRecorder) RecordCut(int) {}
func (nopRecorder) RecordSize(int) {}
