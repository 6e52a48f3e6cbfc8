// Package errs provides the typed validation and lookup errors shared by the
// tour dispatch domain and its adapters.
//
// Every error type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange,
//     ErrObjectNotFound) that callers match with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without cause
//
// Business-rule rejections of tour operations are not modelled here; they live
// next to the tour aggregate as tour.Rejection values.
package errs
