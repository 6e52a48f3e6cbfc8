// Package fleet holds the driver and vehicle records read from the external
// directories. The dispatch engine references them by identifier only; the
// records themselves are never written by this service.
package fleet
