package logger

import (
	"io"
	"os"
	"time"

	"github.com/deppfellow/go-todos/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// New builds the application logger from the observability config.
//
// JSON goes to stdout; "console" uses zerolog's human-friendly writer.
// Every event carries a timestamp plus the service and environment names.
func New(cfg config.ObservabilityConfig) zerolog.Logger {
	var out io.Writer = os.Stdout
	if cfg.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return NewWithWriter(cfg, out)
}

// NewWithWriter is New with an explicit destination. Tests use it to
// capture output.
func NewWithWriter(cfg config.ObservabilityConfig, out io.Writer) zerolog.Logger {
	// Lets .Stack() render stack traces captured by github.com/pkg/errors.
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()
}

// NewBootstrapLogger is used before configuration is available, e.g. to
// report why configuration failed to load.
func NewBootstrapLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// NewPgxLogger returns a logger dedicated to SQL trace output.
// The "component" field separates query logs from request logs.
func NewPgxLogger(base zerolog.Logger, level zerolog.Level) zerolog.Logger {
	return base.Level(level).With().Str("component", "pgx").Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto pgx's tracelog levels.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
