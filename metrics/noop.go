package metrics

import "time"

// NoopSink is a no-op implementation of Sink.
// Used when metrics are disabled to avoid nil checks.
type NoopSink struct{}

// NewNoopSink returns a no-op metrics sink.
func NewNoopSink() *NoopSink {
	return &NoopSink{}
}

func (n *NoopSink) OccurrenceProduced()             {}
func (n *NoopSink) CandidateRejected()              {}
func (n *NoopSink) LocalizationError(kind string)   {}
func (n *NoopSink) IterationStopped(reason string)  {}
func (n *NoopSink) AdvanceDuration(d time.Duration) {}
