// Package schedule holds the stop plans derived from a validated tour:
// sequence numbers, promised time windows and ETAs.
package schedule
