package metrics

import (
	"errors"

	"github.com/davidvella/fibheap"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "fibheap"

var _ fibheap.Recorder = (*HeapMetrics)(nil)

// HeapMetrics exports the structural events of one heap as prometheus
// collectors. Every collector carries a constant "heap" label so several
// heaps can share a registry.
type HeapMetrics struct {
	operations     *prometheus.CounterVec
	consolidations prometheus.Counter
	links          prometheus.Counter
	rootsAfter     prometheus.Histogram
	maxDegree      prometheus.Gauge
	cuts           prometheus.Counter
	cascadingCuts  prometheus.Counter
	size           prometheus.Gauge
}

// New creates the collectors for the heap called heapName. Nothing is
// registered until Register or MustRegister is called.
func New(namespace, heapName string) *HeapMetrics {
	labels := prometheus.Labels{"heap": heapName}
	return &HeapMetrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   subsystem,
				Name:        "operations_total",
				Help:        "number of heap operations by kind",
				ConstLabels: labels,
			}, []string{"op"}),
		consolidations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   subsystem,
				Name:        "consolidations_total",
				Help:        "number of root list consolidations",
				ConstLabels: labels,
			}),
		links: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   subsystem,
				Name:        "links_total",
				Help:        "number of trees linked under another root during consolidation",
				ConstLabels: labels,
			}),
		rootsAfter: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace:   namespace,
				Subsystem:   subsystem,
				Name:        "roots_after_consolidation",
				Help:        "number of roots left by a consolidation",
				ConstLabels: labels,
				Buckets:     prometheus.ExponentialBuckets(1, 2, 8),
			}),
		maxDegree: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Subsystem:   subsystem,
				Name:        "max_degree",
				Help:        "highest root degree seen by the last consolidation",
				ConstLabels: labels,
			}),
		cuts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   subsystem,
				Name:        "cuts_total",
				Help:        "number of decrease-key operations that cut a node from its parent",
				ConstLabels: labels,
			}),
		cascadingCuts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   subsystem,
				Name:        "cascading_cuts_total",
				Help:        "number of marked ancestors cut after losing a second child",
				ConstLabels: labels,
			}),
		size: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Subsystem:   subsystem,
				Name:        "size",
				Help:        "number of entries in the heap",
				ConstLabels: labels,
			}),
	}
}

func (m *HeapMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.operations,
		m.consolidations,
		m.links,
		m.rootsAfter,
		m.maxDegree,
		m.cuts,
		m.cascadingCuts,
		m.size,
	}
}

// Register registers every collector with r. Collectors that fail are
// skipped and their errors joined.
func (m *HeapMetrics) Register(r prometheus.Registerer) error {
	var errs []error
	for _, c := range m.collectors() {
		if err := r.Register(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// MustRegister registers every collector with r and panics on failure.
func (m *HeapMetrics) MustRegister(r prometheus.Registerer) {
	r.MustRegister(m.collectors()...)
}

// RecordOperation counts op in operations_total.
func (m *HeapMetrics) RecordOperation(op fibheap.Operation) {
	m.operations.WithLabelValues(string(op)).Inc()
}

// RecordConsolidation counts one consolidation and its links, observes the
// roots left and sets max_degree.
func (m *HeapMetrics) RecordConsolidation(roots, links, maxDegree int) {
	m.consolidations.Inc()
	m.links.Add(float64(links))
	m.rootsAfter.Observe(float64(roots))
	m.maxDegree.Set(float64(maxDegree))
}

// RecordCut counts one cut and the ancestors cut in cascade.
func (m *HeapMetrics) RecordCut(cascaded int) {
	m.cuts.Inc()
	m.cascadingCuts.Add(float64(cascaded))
}

// RecordSize sets the size gauge.
func (m *HeapMetrics) RecordSize(size int) {
	m.size.Set(float64(size))
}
