// Package errs provides the typed errors shared by the work order service.
//
// Every error type pairs a sentinel (for errors.Is) with a struct carrying the
// offending parameter:
//   - ValueIsRequiredError: a value was not supplied
//   - ValueIsInvalidError: a value breaks a domain rule
//   - ValueIsOutOfRangeError: a value is outside its inclusive bounds
//   - ObjectNotFoundError: a lookup by identifier found nothing
//
// The first three form the invalid input family reported by IsInvalidInput;
// transports map it to a client error, ObjectNotFoundError to a not found
// response. Unwrap always returns the sentinel, so callers can classify an
// error without caring which constructor produced it.
package errs
