package sqlerr

import (
	"fmt"
	"strings"
)

// Code is our classification of a PostgreSQL SQLSTATE.
type Code string

const (
	Other                Code = "other"
	NotNullViolation     Code = "not_null_violation"
	ForeignKeyViolation  Code = "foreign_key_violation"
	UniqueViolation      Code = "unique_violation"
	CheckViolation       Code = "check_violation"
	InvalidTextRepr      Code = "invalid_text_representation"
	NumericOutOfRange    Code = "numeric_value_out_of_range"
	UndefinedTable       Code = "undefined_table"
	UndefinedColumn      Code = "undefined_column"
	SyntaxError          Code = "syntax_error"
	ConnectionException  Code = "connection_exception"
	InsufficientResource Code = "insufficient_resources"
	QueryCanceled        Code = "query_canceled"
	AdminShutdown        Code = "admin_shutdown"
)

// sqlStates maps exact SQLSTATE values.
var sqlStates = map[string]Code{
	"23502": NotNullViolation,
	"23503": ForeignKeyViolation,
	"23505": UniqueViolation,
	"23514": CheckViolation,
	"22P02": InvalidTextRepr,
	"22003": NumericOutOfRange,
	"42P01": UndefinedTable,
	"42703": UndefinedColumn,
	"42601": SyntaxError,
	"57014": QueryCanceled,
	"57P01": AdminShutdown,
}

// MapCode classifies a SQLSTATE. Unknown codes fall back to their class
// (first two characters) where one is meaningful.
func MapCode(sqlState string) Code {
	if code, ok := sqlStates[sqlState]; ok {
		return code
	}

	switch {
	case strings.HasPrefix(sqlState, "08"):
		return ConnectionException
	case strings.HasPrefix(sqlState, "53"):
		return InsufficientResource
	}
	return Other
}

// Severity is the PostgreSQL message severity.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
	SeverityUnknown Severity = "UNKNOWN"
)

// MapSeverity normalizes the severity string reported by the server.
func MapSeverity(severity string) Severity {
	switch s := Severity(strings.ToUpper(severity)); s {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return s
	default:
		return SeverityUnknown
	}
}

// Error is a classified PostgreSQL error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (SQLSTATE %s)", e.Severity, e.Message, e.DatabaseCode)
}

// Unwrap returns the original driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}
