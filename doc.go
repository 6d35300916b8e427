// Package tzcron generates the occurrences of six-field cron/quartz
// expressions anchored to a timezone.
//
//	* * * * * *
//	| | | | | |
//	| | | | | .. year (yyyy or * for any)
//	| | | | ...... day of week (1 - 7, Monday to Sunday)
//	| | | ........... month (1 - 12)
//	| | ................ day of month (1 - 31)
//	| ..................... hour (0 - 23)
//	.......................... minute (0 - 59)
//
// A Schedule yields zone-aware instants at minute granularity, optionally
// bounded by a start/end window and filtered by caller predicates. It
// executes nothing and persists nothing; it is a time-occurrence generator
// for an external scheduler to consume.
//
// Occurrences falling into a DST transition are never resolved silently:
// Next returns AmbiguousTimeError or NonExistentTimeError and moves past the
// candidate, leaving the decision to the caller.
package tzcron
