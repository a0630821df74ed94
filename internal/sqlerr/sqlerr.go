// Package sqlerr specifically handles database driver errors.
//
// It parses SQLSTATE codes from the driver and classifies them
// (unique violation, not-null violation, connection failure...)
// so the global error handler can log something useful. Clients
// only ever see a generic 500.
package sqlerr
