package tzcron

import (
	"fmt"
	"time"
)

// WallTime is a naive calendar instant: a wall-clock reading with no UTC
// offset attached. Seconds are always zero at the granularity this library
// works at.
type WallTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

func (w WallTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d", w.Year, int(w.Month), w.Day, w.Hour, w.Minute)
}

// wallOf reads the wall-clock components of t in its own location.
func wallOf(t time.Time) WallTime {
	return WallTime{Year: t.Year(), Month: t.Month(), Day: t.Day(), Hour: t.Hour(), Minute: t.Minute()}
}

// Zone resolves naive wall-clock instants against a concrete timezone. The
// library never guesses an offset: a wall time that maps to zero or two real
// instants is reported as an error instead.
type Zone interface {
	// Name identifies the zone, e.g. "Europe/Madrid".
	Name() string

	// Wall projects an absolute instant onto this zone's wall clock.
	Wall(t time.Time) WallTime

	// Localize resolves a wall time to the absolute instant it denotes.
	// It fails with NonExistentTimeError when the wall time was skipped by
	// a forward clock change, and with AmbiguousTimeError when a backward
	// change made it occur twice.
	Localize(w WallTime) (time.Time, error)
}

// LoadZone resolves an IANA timezone name into a Zone.
func LoadZone(name string) (Zone, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}
	return InLocation(loc), nil
}

// InLocation adapts a *time.Location to the Zone interface.
func InLocation(loc *time.Location) Zone { return &locationZone{loc: loc} }

type locationZone struct {
	loc *time.Location
}

func (z *locationZone) Name() string { return z.loc.String() }

func (z *locationZone) Wall(t time.Time) WallTime { return wallOf(t.In(z.loc)) }

// dstProbes are the clock-change magnitudes seen in the tzdata era. Half-hour
// shifts exist, e.g. Australia/Lord_Howe.
var dstProbes = []time.Duration{-time.Hour, time.Hour, -30 * time.Minute, 30 * time.Minute}

func (z *locationZone) Localize(w WallTime) (time.Time, error) {
	t := time.Date(w.Year, w.Month, w.Day, w.Hour, w.Minute, 0, 0, z.loc)
	if wallOf(t) != w {
		// time.Date normalized the reading: the wall time fell inside a
		// spring-forward gap.
		return time.Time{}, &NonExistentTimeError{Wall: w, Zone: z.Name()}
	}
	for _, d := range dstProbes {
		if alt := t.Add(d); wallOf(alt) == w {
			return time.Time{}, &AmbiguousTimeError{Wall: w, Zone: z.Name()}
		}
	}
	return t, nil
}
