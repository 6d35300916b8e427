package tzcron

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// fieldBounds describes the legal domain of one expression field plus the
// named aliases it accepts.
type fieldBounds struct {
	name     string
	min, max int
	names    map[string]int

	// openEnded marks the year field: a bare "*" imposes no constraint at
	// all and is not materialized into values.
	openEnded bool
}

var (
	minuteBounds = fieldBounds{name: "minute", min: 0, max: 59}
	hourBounds   = fieldBounds{name: "hour", min: 0, max: 23}
	domBounds    = fieldBounds{name: "day-of-month", min: 1, max: 31}
	monthBounds  = fieldBounds{name: "month", min: 1, max: 12, names: map[string]int{
		"jan": 1,
		"feb": 2,
		"mar": 3,
		"apr": 4,
		"may": 5,
		"jun": 6,
		"jul": 7,
		"aug": 8,
		"sep": 9,
		"oct": 10,
		"nov": 11,
		"dec": 12,
	}}
	dowBounds = fieldBounds{name: "day-of-week", min: 1, max: 7, names: map[string]int{
		"mon": 1,
		"tue": 2,
		"wed": 3,
		"thu": 4,
		"fri": 5,
		"sat": 6,
		"sun": 7,
	}}
	yearBounds = fieldBounds{name: "year", min: 1970, max: 2099, openEnded: true}
)

// fieldSet is the expansion of one field: a sorted set of distinct legal
// values, plus whether the field was written as a bare "*". The star flag
// drives the day-of-month/day-of-week rule and the any-year case.
type fieldSet struct {
	values []int
	star   bool
}

func (s *fieldSet) contains(v int) bool {
	i := sort.SearchInts(s.values, v)
	return i < len(s.values) && s.values[i] == v
}

func (s *fieldSet) min() int { return s.values[0] }

// ceil returns the smallest member >= v.
func (s *fieldSet) ceil(v int) (int, bool) {
	i := sort.SearchInts(s.values, v)
	if i == len(s.values) {
		return 0, false
	}
	return s.values[i], true
}

// above returns the smallest member > v.
func (s *fieldSet) above(v int) (int, bool) { return s.ceil(v + 1) }

// Expression is a parsed six-field cron/quartz expression: one expanded
// value set per field plus the original text. It is immutable and safe to
// share between schedules.
type Expression struct {
	source   string
	minutes  fieldSet
	hours    fieldSet
	days     fieldSet
	months   fieldSet
	weekdays fieldSet
	years    fieldSet
}

// Parse parses a six-field cron/quartz expression:
//
//	minute hour day-of-month month day-of-week year
//
// Each field accepts "*", a literal, a dash-range, a comma-list and a /step
// suffix. Months and weekdays also accept case-insensitive three-letter
// names (jan..dec, mon..sun with Monday=1). The year field accepts "*" for
// any year.
func Parse(expression string) (*Expression, error) {
	fields := strings.Fields(expression)
	if len(fields) != 6 {
		return nil, &SyntaxError{
			Field:  "expression",
			Input:  expression,
			Reason: fmt.Sprintf("expected 6 fields, got %d", len(fields)),
		}
	}

	e := &Expression{source: expression}
	for _, f := range []struct {
		bounds fieldBounds
		set    *fieldSet
		input  string
	}{
		{minuteBounds, &e.minutes, fields[0]},
		{hourBounds, &e.hours, fields[1]},
		{domBounds, &e.days, fields[2]},
		{monthBounds, &e.months, fields[3]},
		{dowBounds, &e.weekdays, fields[4]},
		{yearBounds, &e.years, fields[5]},
	} {
		set, err := parseField(f.input, f.bounds)
		if err != nil {
			return nil, err
		}
		*f.set = set
	}
	return e, nil
}

// String returns the original expression text.
func (e *Expression) String() string { return e.source }

// Minutes returns the expanded minute set.
func (e *Expression) Minutes() []int { return clone(e.minutes.values) }

// Hours returns the expanded hour set.
func (e *Expression) Hours() []int { return clone(e.hours.values) }

// Days returns the expanded day-of-month set.
func (e *Expression) Days() []int { return clone(e.days.values) }

// Months returns the expanded month set.
func (e *Expression) Months() []int { return clone(e.months.values) }

// Weekdays returns the expanded day-of-week set, Monday=1 through Sunday=7.
func (e *Expression) Weekdays() []int { return clone(e.weekdays.values) }

// Years returns the expanded year set, or nil when the year field is "*".
func (e *Expression) Years() []int {
	if e.years.star {
		return nil
	}
	return clone(e.years.values)
}

func clone(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	return out
}

// parseField parses and expands one field into its value set.
func parseField(input string, b fieldBounds) (fieldSet, error) {
	if input == "" {
		return fieldSet{}, &SyntaxError{Field: b.name, Input: input, Reason: "empty field"}
	}
	star := input == "*"
	if star && b.openEnded {
		return fieldSet{star: true}, nil
	}

	seen := make(map[int]bool)
	for _, item := range strings.Split(input, ",") {
		values, err := expandItem(item, b)
		if err != nil {
			return fieldSet{}, err
		}
		for _, v := range values {
			seen[v] = true
		}
	}

	values := make([]int, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Ints(values)
	if len(values) == 0 {
		return fieldSet{}, &RangeError{Field: b.name, Input: input, Reason: "expands to no values"}
	}
	return fieldSet{values: values, star: star}, nil
}

// fieldItem is one comma-separated item of a field in normalized form: a
// wildcard, literal or range base with an optional step. All three bases
// reduce to an inclusive lo..hi span.
type fieldItem struct {
	lo, hi int
	step   int // 0 means no step
}

// parseItem normalizes one item of a field.
func parseItem(item string, b fieldBounds) (fieldItem, error) {
	var it fieldItem

	base := item
	if slash := strings.IndexByte(item, '/'); slash >= 0 {
		base = item[:slash]
		stepText := item[slash+1:]
		step, err := strconv.Atoi(stepText)
		if err != nil {
			return fieldItem{}, &SyntaxError{
				Field:  b.name,
				Input:  item,
				Reason: fmt.Sprintf("step %q is not an integer", stepText),
			}
		}
		if step <= 0 {
			return fieldItem{}, &SyntaxError{Field: b.name, Input: item, Reason: "step must be positive"}
		}
		it.step = step
	}

	switch {
	case base == "*":
		it.lo, it.hi = b.min, b.max
	case strings.Contains(base, "-"):
		loText, hiText, _ := strings.Cut(base, "-")
		lo, err := parseValue(loText, b)
		if err != nil {
			return fieldItem{}, err
		}
		hi, err := parseValue(hiText, b)
		if err != nil {
			return fieldItem{}, err
		}
		if lo > hi {
			return fieldItem{}, &SyntaxError{
				Field:  b.name,
				Input:  base,
				Reason: fmt.Sprintf("range start %d exceeds end %d", lo, hi),
			}
		}
		it.lo, it.hi = lo, hi
	default:
		v, err := parseValue(base, b)
		if err != nil {
			return fieldItem{}, err
		}
		it.lo, it.hi = v, v
	}
	return it, nil
}

// expandItem expands one normalized item into its concrete values.
func expandItem(item string, b fieldBounds) ([]int, error) {
	it, err := parseItem(item, b)
	if err != nil {
		return nil, err
	}
	step := it.step
	if step == 0 {
		step = 1
	}
	values := make([]int, 0, (it.hi-it.lo)/step+1)
	for v := it.lo; v <= it.hi; v += step {
		values = append(values, v)
	}
	return values, nil
}

// parseValue resolves a literal or named alias and checks the field domain.
func parseValue(text string, b fieldBounds) (int, error) {
	if v, ok := b.names[strings.ToLower(text)]; ok {
		return v, nil
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, &SyntaxError{
			Field:  b.name,
			Input:  text,
			Reason: fmt.Sprintf("%q is not a number or %s name", text, b.name),
		}
	}
	if v < b.min || v > b.max {
		return 0, &RangeError{
			Field:  b.name,
			Input:  text,
			Reason: fmt.Sprintf("%d outside %d-%d", v, b.min, b.max),
		}
	}
	return v, nil
}
