// Package metrics defines the instrumentation hooks for schedule iteration.
package metrics

import "time"

// Sink records iteration events. All methods are fire-and-forget:
// implementations MUST NOT block or propagate errors. If the metrics backend
// is unavailable, implementations log warnings and continue.
type Sink interface {
	// OccurrenceProduced counts an occurrence emitted to the caller.
	OccurrenceProduced()

	// CandidateRejected counts a candidate dropped by a filter.
	CandidateRejected()

	// LocalizationError counts a candidate that could not be resolved to a
	// single instant, labeled by kind.
	LocalizationError(kind string)

	// IterationStopped counts a terminal state transition, labeled by the
	// reason the sequence ended.
	IterationStopped(reason string)

	// AdvanceDuration observes the latency of one advancement search.
	AdvanceDuration(d time.Duration)
}

// Kind labels for LocalizationError.
const (
	KindAmbiguous   = "ambiguous"
	KindNonExistent = "non_existent"
)

// Reason labels for IterationStopped.
const (
	ReasonEndBound       = "end_bound"
	ReasonFilterStop     = "filter_stop"
	ReasonYearsExhausted = "years_exhausted"
	ReasonUnmatchable    = "unmatchable"
)
