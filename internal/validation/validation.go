// Package validation binds request data and validates it.
//
// It uses the `validator` library to enforce rules defined in
// struct tags (field presence, for this service).
package validation
