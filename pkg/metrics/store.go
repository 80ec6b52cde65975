package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records action throughput and effect latency for reducer stores.
type StoreMetrics struct {
	actions     *prometheus.CounterVec
	taskLatency *prometheus.HistogramVec
	dropped     *prometheus.CounterVec
	submissions *prometheus.CounterVec
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_actions_total",
		Help: "Actions reduced by a store.",
	}, []string{"store", "action"})
	taskLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_task_duration_seconds",
		Help:    "Duration of asynchronous store tasks in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"store", "task"})
	dropped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_task_results_dropped_total",
		Help: "Task results discarded because their store was closed.",
	}, []string{"store", "task"})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_submissions_total",
		Help: "Order submissions by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(actions, taskLatency, dropped, submissions)
	return &StoreMetrics{
		actions:     actions,
		taskLatency: taskLatency,
		dropped:     dropped,
		submissions: submissions,
	}
}

// IncAction counts one reduced action.
func (m *StoreMetrics) IncAction(store, action string) {
	if m == nil || m.actions == nil {
		return
	}
	m.actions.WithLabelValues(normalizeLabel(store), normalizeLabel(action)).Inc()
}

// ObserveTask records how long a task ran.
func (m *StoreMetrics) ObserveTask(store, task string, duration time.Duration) {
	if m == nil || m.taskLatency == nil {
		return
	}
	m.taskLatency.WithLabelValues(normalizeLabel(store), normalizeLabel(task)).Observe(duration.Seconds())
}

// IncDropped counts a task result that arrived after its store closed.
func (m *StoreMetrics) IncDropped(store, task string) {
	if m == nil || m.dropped == nil {
		return
	}
	m.dropped.WithLabelValues(normalizeLabel(store), normalizeLabel(task)).Inc()
}

// IncSubmission counts an order submission outcome ("success" or "failure").
func (m *StoreMetrics) IncSubmission(outcome string) {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
