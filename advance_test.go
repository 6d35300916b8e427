package tzcron

import (
	"errors"
	"testing"
	"time"
)

func naive(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func mustParse(t *testing.T, expr string) *Expression {
	t.Helper()
	e, err := Parse(expr)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", expr, err)
	}
	return e
}

func TestAdvance_Sequences(t *testing.T) {
	tests := []struct {
		name string
		expr string
		from time.Time
		want []time.Time
	}{
		{
			name: "every minute",
			expr: "* * * * * *",
			from: naive(2016, 9, 25, 19, 10),
			want: []time.Time{
				naive(2016, 9, 25, 19, 11),
				naive(2016, 9, 25, 19, 12),
				naive(2016, 9, 25, 19, 13),
			},
		},
		{
			name: "weekly thursday",
			expr: "30 10 * * thu *",
			from: naive(2016, 9, 25, 19, 10),
			want: []time.Time{
				naive(2016, 9, 29, 10, 30),
				naive(2016, 10, 6, 10, 30),
			},
		},
		{
			name: "weekday list from monday",
			expr: "30 10 * * mon,tue *",
			from: naive(2016, 9, 26, 0, 0),
			want: []time.Time{
				naive(2016, 9, 26, 10, 30),
				naive(2016, 9, 27, 10, 30),
				naive(2016, 10, 3, 10, 30),
			},
		},
		{
			name: "range with step wraps hour",
			expr: "0-10/2 * * * * *",
			from: naive(2016, 9, 25, 19, 59),
			want: []time.Time{
				naive(2016, 9, 25, 20, 0),
				naive(2016, 9, 25, 20, 2),
				naive(2016, 9, 25, 20, 4),
				naive(2016, 9, 25, 20, 6),
				naive(2016, 9, 25, 20, 8),
				naive(2016, 9, 25, 20, 10),
				naive(2016, 9, 25, 21, 0),
			},
		},
		{
			name: "friday at five",
			expr: "0 5 * * 5 *",
			from: naive(1989, 4, 24, 5, 1),
			want: []time.Time{naive(1989, 4, 28, 5, 0)},
		},
		{
			name: "dom and dow both restricted match either",
			expr: "0 0 3 6 fri *",
			from: naive(2016, 5, 31, 12, 30),
			want: []time.Time{
				naive(2016, 6, 3, 0, 0),  // day-of-month 3 (also a Friday)
				naive(2016, 6, 10, 0, 0), // Friday, day-of-month does not match
			},
		},
		{
			name: "dow alone restricts when dom is star",
			expr: "0 0 * * fri *",
			from: naive(2016, 6, 3, 0, 0),
			want: []time.Time{
				naive(2016, 6, 10, 0, 0),
				naive(2016, 6, 17, 0, 0),
			},
		},
		{
			name: "year jump is direct",
			expr: "0 0 1 1 * 2030",
			from: naive(2016, 1, 1, 0, 0),
			want: []time.Time{naive(2030, 1, 1, 0, 0)},
		},
		{
			name: "exact match advances to next day",
			expr: "30 10 * * * *",
			from: naive(2016, 9, 25, 10, 30),
			want: []time.Time{naive(2016, 9, 26, 10, 30)},
		},
		{
			name: "leap day",
			expr: "0 0 29 2 * *",
			from: naive(2015, 3, 1, 0, 0),
			want: []time.Time{naive(2016, 2, 29, 0, 0)},
		},
		{
			name: "month carry into next year",
			expr: "0 0 1 2 * *",
			from: naive(2016, 3, 15, 8, 0),
			want: []time.Time{naive(2017, 2, 1, 0, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustParse(t, tt.expr)
			cursor := tt.from
			for i, want := range tt.want {
				got, err := e.next(cursor)
				if err != nil {
					t.Fatalf("next #%d returned error: %v", i, err)
				}
				if !got.Equal(want) {
					t.Fatalf("next #%d = %v, want %v", i, got, want)
				}
				cursor = got
			}
		})
	}
}

func TestAdvance_Unmatchable(t *testing.T) {
	e := mustParse(t, "0 0 31 2 * *")
	_, err := e.next(naive(2016, 1, 1, 0, 0))
	var unmatchable *UnmatchableError
	if !errors.As(err, &unmatchable) {
		t.Fatalf("next returned %v, want UnmatchableError", err)
	}
}

func TestAdvance_YearSetExhausted(t *testing.T) {
	tests := []struct {
		name string
		expr string
		from time.Time
	}{
		{"start past the year", "* * * * * 2016", naive(2017, 1, 1, 0, 0)},
		{"last match already emitted", "59 23 31 12 * 2016", naive(2016, 12, 31, 23, 59)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustParse(t, tt.expr)
			_, err := e.next(tt.from)
			if !errors.Is(err, ErrExhausted) {
				t.Fatalf("next returned %v, want ErrExhausted", err)
			}
		})
	}
}

func TestAdvance_StrictlyIncreasing(t *testing.T) {
	e := mustParse(t, "*/7 */3 * * * *")
	cursor := naive(2016, 9, 25, 19, 10)
	for i := 0; i < 200; i++ {
		got, err := e.next(cursor)
		if err != nil {
			t.Fatalf("next #%d returned error: %v", i, err)
		}
		if !got.After(cursor) {
			t.Fatalf("next #%d = %v, not after cursor %v", i, got, cursor)
		}
		cursor = got
	}
}
