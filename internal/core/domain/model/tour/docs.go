// Package tour contains the Tour aggregate: the unit of dispatch for one
// destination city on one planning date.
//
// A tour moves through a small lifecycle:
//
//	open ──> validated ──> closed
//
// Validation requires a driver, a vehicle, at least one stop and distinct
// customers, and puts every stop in progress. Closing requires every stop to
// be delivered with proofs (see services.ClosureGate). Editing the stops or
// the resources of a validated tour sends it back to open.
//
// Business-rule failures are *Rejection values carrying a Reason and the
// offending order identifiers; compare them with errors.Is against the Err*
// sentinels:
//
//	if errors.Is(err, tour.ErrTourFull) {
//	    // the tour already has N stops
//	}
package tour
