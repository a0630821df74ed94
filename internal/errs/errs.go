// Package errs define the error-result type handlers return.
//
// Every failure leaves a handler as an *HTTPError (or is turned
// into one by the global error handler), so the client always
// receives the same generic JSON shape and never the cause.
package errs
