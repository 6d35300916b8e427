package tzcron

import (
	"errors"
	"fmt"
)

// ErrExhausted signals the end of a schedule's sequence: the end bound was
// reached, a filter requested a stop, or a restricted year set has no years
// left.
var ErrExhausted = errors.New("tzcron: schedule exhausted")

// SyntaxError reports a malformed expression field.
type SyntaxError struct {
	Field  string
	Input  string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("tzcron: %s field %q: %s", e.Field, e.Input, e.Reason)
}

// RangeError reports a field whose values fall outside its legal domain or
// whose expansion is empty.
type RangeError struct {
	Field  string
	Input  string
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("tzcron: %s field %q: %s", e.Field, e.Input, e.Reason)
}

// AmbiguousTimeError reports a wall time that occurred twice because clocks
// moved backward across it.
type AmbiguousTimeError struct {
	Wall WallTime
	Zone string
}

func (e *AmbiguousTimeError) Error() string {
	return fmt.Sprintf("tzcron: %s is ambiguous in %s", e.Wall, e.Zone)
}

// NonExistentTimeError reports a wall time that never occurred because clocks
// moved forward across it.
type NonExistentTimeError struct {
	Wall WallTime
	Zone string
}

func (e *NonExistentTimeError) Error() string {
	return fmt.Sprintf("tzcron: %s does not exist in %s", e.Wall, e.Zone)
}

// UnmatchableError reports an expression with no matching instant within the
// advancer's search bound, e.g. day-of-month 31 with month February.
type UnmatchableError struct {
	Expression string
}

func (e *UnmatchableError) Error() string {
	return fmt.Sprintf("tzcron: no instant matches %q within %d years", e.Expression, maxYearScan)
}
