package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusSink implements Sink using the Prometheus client library.
// All methods are non-blocking and fire-and-forget.
// Registration errors are logged but never propagated.
type PrometheusSink struct {
	occurrencesTotal        prometheus.Counter
	candidatesRejectedTotal prometheus.Counter
	localizationErrorsTotal *prometheus.CounterVec
	iterationStopsTotal     *prometheus.CounterVec
	advanceDuration         prometheus.Histogram
}

// NewPrometheusSink creates a new Prometheus metrics sink.
// If registration fails, it logs a warning and returns a functional sink.
func NewPrometheusSink(reg prometheus.Registerer) *PrometheusSink {
	s := &PrometheusSink{}

	s.occurrencesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tzcron_occurrences_total",
		Help: "Total number of occurrences emitted to callers.",
	})
	s.candidatesRejectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tzcron_candidates_rejected_total",
		Help: "Total number of candidate occurrences dropped by filters.",
	})
	s.localizationErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tzcron_localization_errors_total",
		Help: "Total number of candidates that hit a DST transition, by kind.",
	}, []string{"kind"})
	s.iterationStopsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tzcron_iteration_stops_total",
		Help: "Total number of schedules reaching their terminal state, by reason.",
	}, []string{"reason"})
	s.advanceDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tzcron_advance_duration_seconds",
		Help:    "Latency of one occurrence advancement search in seconds.",
		Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
	})

	s.register(reg, s.occurrencesTotal, "tzcron_occurrences_total")
	s.register(reg, s.candidatesRejectedTotal, "tzcron_candidates_rejected_total")
	s.register(reg, s.localizationErrorsTotal, "tzcron_localization_errors_total")
	s.register(reg, s.iterationStopsTotal, "tzcron_iteration_stops_total")
	s.register(reg, s.advanceDuration, "tzcron_advance_duration_seconds")

	return s
}

// register attempts to register a collector, logging any errors without propagating them.
func (s *PrometheusSink) register(reg prometheus.Registerer, c prometheus.Collector, name string) {
	if err := reg.Register(c); err != nil {
		log.Printf("metrics: failed to register %s: %v", name, err)
	}
}

func (s *PrometheusSink) OccurrenceProduced() {
	s.occurrencesTotal.Inc()
}

func (s *PrometheusSink) CandidateRejected() {
	s.candidatesRejectedTotal.Inc()
}

func (s *PrometheusSink) LocalizationError(kind string) {
	s.localizationErrorsTotal.WithLabelValues(kind).Inc()
}

func (s *PrometheusSink) IterationStopped(reason string) {
	s.iterationStopsTotal.WithLabelValues(reason).Inc()
}

func (s *PrometheusSink) AdvanceDuration(d time.Duration) {
	s.advanceDuration.Observe(d.Seconds())
}
