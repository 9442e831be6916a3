package fibheap

import "go.uber.org/zap"

// options defines all configuration options for a heap.
type options struct {
	logger   *zap.Logger // Debug events; nil disables logging
	recorder Recorder    // Structural events for metrics
	capacity int         // Roots preallocated in the consolidation scratch space
}

// Option is a function that configures a heap.
type Option func(*options)

// WithLogger sets the logger that receives debug events about consolidation,
// cascading cuts, merges and rejected operations.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRecorder sets the recorder that receives structural events.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r == nil {
			r = nopRecorder{}
		}
		o.recorder = r
	}
}

// WithCapacity preallocates consolidation scratch space for n roots, which
// avoids regrowing it on the first ExtractMin after n enqueues.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		logger:   nil,
		recorder: nopRecorder{},
		capacity: 0,
	}
}
