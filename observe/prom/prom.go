// Package prom exports context-tree lifecycle events as Prometheus metrics.
package prom

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NetPo4ki/go-ctxtree/ctxtree"
)

// Metrics implements ctxtree.Observer on top of a Prometheus registry.
// Attach one to a root with ctxtree.WithObserver and every context derived
// from that root reports into it.
type Metrics struct {
	created      *prometheus.CounterVec
	done         *prometheus.CounterVec
	timersActive prometheus.Gauge
	timersFired  prometheus.Counter
	sleep        prometheus.Histogram
}

var _ ctxtree.Observer = (*Metrics)(nil)

// New builds a Metrics observer and registers its collectors with reg.
// Use prometheus.DefaultRegisterer to feed the default handler.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		created: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ctxtree",
			Name:      "contexts_created_total",
			Help:      "Contexts created, by derivation kind.",
		}, []string{"kind"}),
		done: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ctxtree",
			Name:      "contexts_done_total",
			Help:      "Cancellation signals settled, by cause class.",
		}, []string{"cause"}),
		timersActive: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "ctxtree",
			Name:      "timers_active",
			Help:      "Timers currently armed by timeouts and sleeps.",
		}),
		timersFired: f.NewCounter(prometheus.CounterOpts{
			Namespace: "ctxtree",
			Name:      "timers_fired_total",
			Help:      "Timers that went off before being stopped.",
		}),
		sleep: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ctxtree",
			Name:      "sleep_duration_seconds",
			Help:      "Time spent inside Sleep, cancelled or not.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// ContextCreated counts a new context under its derivation kind.
func (m *Metrics) ContextCreated(_ *ctxtree.Context, kind ctxtree.Kind) {
	m.created.WithLabelValues(kind.String()).Inc()
}

// ContextDone counts a settled signal under its cause class.
func (m *Metrics) ContextDone(_ *ctxtree.Context, cause error) {
	m.done.WithLabelValues(causeClass(cause)).Inc()
}

// TimerArmed tracks an armed timer.
func (m *Metrics) TimerArmed(_ *ctxtree.Context) {
	m.timersActive.Inc()
}

// TimerDisarmed tracks a released timer and whether it fired first.
func (m *Metrics) TimerDisarmed(_ *ctxtree.Context, fired bool) {
	m.timersActive.Dec()
	if fired {
		m.timersFired.Inc()
	}
}

// SleepDone records how long a Sleep call actually blocked.
func (m *Metrics) SleepDone(_ *ctxtree.Context, slept time.Duration, _ error) {
	m.sleep.Observe(slept.Seconds())
}

// causeClass folds a cancellation cause into a small label set: the two
// built-in sentinels, other tagged cancellations, and plain errors.
func causeClass(cause error) string {
	switch {
	case errors.Is(cause, ctxtree.TimedOut):
		return "timed_out"
	case errors.Is(cause, ctxtree.Cancelled):
		return "cancelled"
	case ctxtree.IsCancellation(cause):
		return "custom"
	default:
		return "error"
	}
}
