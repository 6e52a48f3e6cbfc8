// Package services holds the pure domain services of the dispatch engine:
//   - CoordinateSynthesizer: deterministic stand-in for geocoding
//   - OrderClusterer: candidate orders per city for a date or a week
//   - RouteOptimizer: nearest-neighbour stop sequencing
//   - ConstraintValidator: capacity, driver, vehicle and eligibility rules
//   - StopScheduler: sequence numbers, windows and ETAs of a validated tour
//   - ClosureGate: delivered, proof of delivery and returns checks before closing
//
// None of them performs I/O; the command handlers load the data they need
// through the ports and hand it over.
package services
