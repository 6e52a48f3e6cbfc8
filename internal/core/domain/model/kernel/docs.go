// Package kernel holds the value objects shared by the tour dispatch model:
// calendar dates with a tolerant parser, times of day and promised delivery
// windows, and planar coordinates used by the route optimizer.
//
// All values are immutable and safe for concurrent use.
package kernel
