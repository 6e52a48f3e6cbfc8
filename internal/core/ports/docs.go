// Package ports defines the contracts between the dispatch core and the
// outside world: the durable tour store (repositories behind a unit of work),
// the external collaborators the engine reads from (ERP orders, driver and
// vehicle directories, proof registry, time windows), the per-key locker and
// the event publisher.
//
// Lookups that find nothing return an error wrapping errs.ErrObjectNotFound.
package ports
