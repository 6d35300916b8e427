package tzcron

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bloomberg/tzcron/metrics"
)

// FilterResult is a filter's verdict on one candidate occurrence.
type FilterResult int

const (
	// FilterAccept passes the candidate on to the next filter.
	FilterAccept FilterResult = iota
	// FilterReject skips the candidate; iteration continues with the next.
	FilterReject
	// FilterStop ends the schedule's sequence entirely.
	FilterStop
)

// Filter inspects a localized candidate occurrence. The first non-accept
// verdict in the chain short-circuits the remaining filters.
type Filter func(occurrence time.Time) FilterResult

// Schedule generates the occurrences of a cron expression in a timezone.
//
// A Schedule is not safe for concurrent use: Next mutates the iteration
// cursor. The underlying Expression is immutable and may be shared.
type Schedule struct {
	id      uuid.UUID
	expr    *Expression
	zone    Zone
	clock   func() time.Time
	filters []Filter
	sink    metrics.Sink

	start time.Time
	end   time.Time // zero means unbounded

	cursor    time.Time // last committed naive instant, carried in UTC
	exhausted bool
}

// Option configures a Schedule at construction.
type Option func(*Schedule)

// WithStart sets the instant occurrences are generated from (inclusive: a
// start sitting exactly on a matching minute is itself the first occurrence).
// Defaults to the current time in the target zone.
func WithStart(t time.Time) Option {
	return func(s *Schedule) { s.start = t }
}

// WithEnd sets the exclusive upper bound of the sequence.
func WithEnd(t time.Time) Option {
	return func(s *Schedule) { s.end = t }
}

// WithFilters appends predicates every candidate occurrence must pass.
func WithFilters(filters ...Filter) Option {
	return func(s *Schedule) { s.filters = append(s.filters, filters...) }
}

// WithClock injects the time source used when no start instant is given.
func WithClock(clock func() time.Time) Option {
	return func(s *Schedule) { s.clock = clock }
}

// WithMetrics attaches a metrics sink. Defaults to a no-op sink.
func WithMetrics(sink metrics.Sink) Option {
	return func(s *Schedule) { s.sink = sink }
}

// New builds a schedule from a six-field cron/quartz expression and a target
// zone. Parse failures are fatal: no partially constructed schedule is
// returned.
func New(expression string, zone Zone, opts ...Option) (*Schedule, error) {
	expr, err := Parse(expression)
	if err != nil {
		return nil, err
	}

	s := &Schedule{
		id:    uuid.New(),
		expr:  expr,
		zone:  zone,
		clock: time.Now,
		sink:  metrics.NewNoopSink(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.start.IsZero() {
		s.start = s.clock()
	}

	// Project the start onto the zone's wall clock and strip the offset;
	// the cursor lives in naive wall time from here on.
	w := zone.Wall(s.start)
	cursor := time.Date(w.Year, w.Month, w.Day, w.Hour, w.Minute, 0, 0, time.UTC)
	if s.start.Second() == 0 && s.start.Nanosecond() == 0 {
		// Exactly on a minute boundary: that minute is still eligible.
		cursor = cursor.Add(-time.Minute)
	}
	s.cursor = cursor

	return s, nil
}

// ID returns the schedule's construction-time identity.
func (s *Schedule) ID() uuid.UUID { return s.id }

// Expression returns the parsed expression.
func (s *Schedule) Expression() *Expression { return s.expr }

func (s *Schedule) String() string {
	end := "None"
	if !s.end.IsZero() {
		end = s.end.Format(time.RFC3339)
	}
	return fmt.Sprintf("Cron: %s @%s [%s->%s]", s.expr.source, s.zone.Name(), s.start.Format(time.RFC3339), end)
}

// Next returns the next occurrence: a zone-aware instant at minute
// granularity, strictly after the previous one. It returns ErrExhausted once
// the sequence has ended, and AmbiguousTimeError or NonExistentTimeError when
// a candidate cannot be localized. Localization failures are recoverable: the
// cursor has already moved past the candidate, so calling Next again resumes
// from the following one.
func (s *Schedule) Next() (time.Time, error) {
	if s.exhausted {
		return time.Time{}, ErrExhausted
	}

	for {
		began := time.Now()
		naive, err := s.expr.next(s.cursor)
		s.sink.AdvanceDuration(time.Since(began))
		if err != nil {
			var unmatchable *UnmatchableError
			switch {
			case errors.Is(err, ErrExhausted):
				s.exhausted = true
				s.sink.IterationStopped(metrics.ReasonYearsExhausted)
			case errors.As(err, &unmatchable):
				s.exhausted = true
				s.sink.IterationStopped(metrics.ReasonUnmatchable)
			}
			return time.Time{}, err
		}
		s.cursor = naive

		occurrence, err := s.zone.Localize(wallOf(naive))
		if err != nil {
			kind := metrics.KindNonExistent
			var ambiguous *AmbiguousTimeError
			if errors.As(err, &ambiguous) {
				kind = metrics.KindAmbiguous
			}
			s.sink.LocalizationError(kind)
			return time.Time{}, err
		}

		if !s.end.IsZero() && !occurrence.Before(s.end) {
			s.exhausted = true
			s.sink.IterationStopped(metrics.ReasonEndBound)
			return time.Time{}, ErrExhausted
		}

		switch s.evaluate(occurrence) {
		case FilterAccept:
			s.sink.OccurrenceProduced()
			return occurrence, nil
		case FilterReject:
			s.sink.CandidateRejected()
		case FilterStop:
			s.exhausted = true
			s.sink.IterationStopped(metrics.ReasonFilterStop)
			return time.Time{}, ErrExhausted
		}
	}
}

// evaluate runs the filter chain over one candidate.
func (s *Schedule) evaluate(occurrence time.Time) FilterResult {
	for _, f := range s.filters {
		if res := f(occurrence); res != FilterAccept {
			return res
		}
	}
	return FilterAccept
}
