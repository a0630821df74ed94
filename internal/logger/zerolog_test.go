package logger

import (
	"bytes"
	"testing"

	"github.com/deppfellow/go-todos/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := NewWithWriter(cfg, &buf)

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"message":"kept"`)
	assert.Contains(t, out, `"service":"todos"`)
	assert.Contains(t, out, `"environment":"production"`)
	assert.Contains(t, out, `"time":`)
}

func TestNewWithWriter_Stack(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.DefaultObservabilityConfig(), &buf)

	log.Error().Stack().Err(errors.New("boom")).Msg("failed")

	assert.Contains(t, buf.String(), `"stack":[`)
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := map[zerolog.Level]tracelog.LogLevel{
		zerolog.TraceLevel: tracelog.LogLevelTrace,
		zerolog.DebugLevel: tracelog.LogLevelDebug,
		zerolog.InfoLevel:  tracelog.LogLevelInfo,
		zerolog.WarnLevel:  tracelog.LogLevelWarn,
		zerolog.ErrorLevel: tracelog.LogLevelError,
		zerolog.FatalLevel: tracelog.LogLevelError,
		zerolog.Disabled:   tracelog.LogLevelNone,
		zerolog.NoLevel:    tracelog.LogLevelNone,
		zerolog.PanicLevel: tracelog.LogLevelError,
	}

	for level, want := range tests {
		assert.Equal(t, want, GetPgxTraceLogLevel(level), level.String())
	}
}

func TestNewPgxLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	pgxLogger := NewPgxLogger(base, zerolog.InfoLevel)
	pgxLogger.Debug().Msg("dropped")
	pgxLogger.Info().Msg("query")

	assert.Contains(t, buf.String(), `"component":"pgx"`)
	assert.NotContains(t, buf.String(), "dropped")
}
