// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env`
// file if present), loads them into structured Go types, and
// validates that required values are present so the process can
// refuse to start on bad or missing config.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide defaults for optional settings.
package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into
	// the process env before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// DefaultPort is the HTTP listener port used when PORT is not set.
const DefaultPort = "7777"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from (see envKeys).
// The `validate:"..."` tags are enforced by go-playground/validator.
type Config struct {
	Primary       Primary             `koanf:"primary" validate:"required"`
	Server        ServerConfig        `koanf:"server" validate:"required"`
	Database      DatabaseConfig      `koanf:"database" validate:"required"`
	Observability ObservabilityConfig `koanf:"observability" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// The first five fields are the required settings; the process does not
// start without them.
type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxConns        int32         `koanf:"max_conns" validate:"min=1"`
	MinConns        int32         `koanf:"min_conns" validate:"min=0,ltefield=MaxConns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
}

// envKeys maps the supported environment variable names to koanf key paths.
// Anything not listed here is ignored.
var envKeys = map[string]string{
	"DB_USER":               "database.user",
	"DB_HOST":               "database.host",
	"DB_NAME":               "database.name",
	"DB_PASSWORD":           "database.password",
	"DB_PORT":               "database.port",
	"DB_SSL_MODE":           "database.ssl_mode",
	"DB_MAX_CONNS":          "database.max_conns",
	"DB_MIN_CONNS":          "database.min_conns",
	"DB_CONN_MAX_LIFETIME":  "database.conn_max_lifetime",
	"DB_CONN_MAX_IDLE_TIME": "database.conn_max_idle_time",

	"PORT":                 "server.port",
	"SERVER_READ_TIMEOUT":  "server.read_timeout",
	"SERVER_WRITE_TIMEOUT": "server.write_timeout",
	"SERVER_IDLE_TIMEOUT":  "server.idle_timeout",
	"CORS_ALLOWED_ORIGINS": "server.cors_allowed_origins",

	"APP_ENV":                  "primary.env",
	"LOG_LEVEL":                "observability.logging.level",
	"LOG_FORMAT":               "observability.logging.format",
	"LOG_SLOW_QUERY_THRESHOLD": "observability.logging.slow_query_threshold",
}

// defaultConfig is the starting point koanf unmarshals on top of.
// Keys absent from the environment keep these values.
func defaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               DefaultPort,
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			SSLMode:         "disable",
			MaxConns:        10,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 30 * time.Minute,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables, unmarshals it
// on top of the defaults, validates it, and returns the resulting config.
//
// A missing required setting produces an error that names every absent
// variable, e.g. "missing environment variables: DB_HOST, DB_PORT".
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		path, ok := envKeys[key]
		if !ok || value == "" {
			// An empty key tells the provider to skip the variable.
			// Empty values count as unset, same as absent ones.
			return "", nil
		}

		if path == "server.cors_allowed_origins" {
			return path, splitList(value)
		}

		return path, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := defaultConfig()

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.SplitN(field.Tag.Get("koanf"), ",", 2)[0]
	})

	if err := validate.Struct(mainConfig); err != nil {
		return nil, describeValidationError(err)
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// describeValidationError turns validator errors back into env var names,
// so the operator sees which variable to set.
func describeValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("config validation failed: %w", err)
	}

	envNames := make(map[string]string, len(envKeys))
	for name, path := range envKeys {
		envNames[path] = name
	}

	var missing, invalid []string
	for _, fe := range validationErrors {
		// Namespace is "Config.database.host" because the tag name func
		// reports koanf names; drop the root struct name.
		path := strings.TrimPrefix(fe.Namespace(), "Config.")

		name, ok := envNames[path]
		if !ok {
			name = path
		}

		if fe.Tag() == "required" {
			missing = append(missing, name)
		} else {
			invalid = append(invalid, fmt.Sprintf("%s (%s)", name, fe.Tag()))
		}
	}

	sort.Strings(missing)
	sort.Strings(invalid)

	switch {
	case len(missing) > 0 && len(invalid) > 0:
		return fmt.Errorf("missing environment variables: %s; invalid environment variables: %s",
			strings.Join(missing, ", "), strings.Join(invalid, ", "))
	case len(missing) > 0:
		return fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	default:
		return fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
