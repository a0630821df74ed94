// Package logger configures the application's logging.
//
// It uses *ZeroLog* for structured logs and provides the
// adapters the database layer needs to route pgx trace output
// through the same logger.
package logger
