package metrics

import "github.com/prometheus/client_golang/prometheus"

// QueueMetrics exposes counters/histograms for the queue engine.
type QueueMetrics struct {
	operations *prometheus.CounterVec
	waitTime   prometheus.Histogram
}

func NewQueueMetrics(reg prometheus.Registerer) *QueueMetrics {
	m := &QueueMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "queue",
			Name:      "operations_total",
			Help:      "Queue engine operations by outcome",
		}, []string{"operation", "result"}),
		waitTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "clinic",
			Subsystem: "queue",
			Name:      "wait_seconds",
			Help:      "Time between joining a doctor's queue and the start of the consultation",
			Buckets:   prometheus.ExponentialBuckets(30, 2, 10),
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.operations, m.waitTime)
	return m
}

func (m *QueueMetrics) ObserveOperation(operation, result string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, result).Inc()
}

func (m *QueueMetrics) ObserveWait(seconds float64) {
	if m == nil {
		return
	}
	m.waitTime.Observe(seconds)
}
