package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/go-todos/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the mapped Code for a given error.
//
// It looks for a *Error first and then for a raw *pgconn.PgError.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return MapCode(pgerr.Code)
	}

	if isConnectError(err) {
		return ConnectionException
	}
	return Other
}

// ConvertPgError converts a raw Postgres error into our *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode creates a log-friendly error code from a DB error.
//
// Output format is <DOMAIN>_<ACTION>, e.g. todos + UniqueViolation
// => TODO_ALREADY_EXISTS.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	// Naive singularization: "TODOS" -> "TODO".
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidTextRepr, NumericOutOfRange:
		action = "INVALID"
	case ConnectionException, InsufficientResource, AdminShutdown:
		action = "UNAVAILABLE"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// Describe produces a readable one-line explanation of a classified error
// for the server log.
func Describe(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		column := extractColumnForUniqueViolation(sqlErr.ConstraintName)
		if column == "" {
			column = "identifier"
		} else {
			column = humanizeText(column)
		}
		return fmt.Sprintf("A %s with this %s already exists", entityName, column)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case InvalidTextRepr, NumericOutOfRange:
		return "A value could not be converted to the column type"

	case ConnectionException, InsufficientResource, AdminShutdown:
		return "The database is unavailable"

	default:
		return "The database rejected the statement"
	}
}

// getEntityName infers an entity name from table/column data.
//
//  1. A column ending in "_id" names the referenced entity.
//  2. Otherwise the table name, singularized if it ends with "s".
//  3. Otherwise "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts snake_case into Title Case.
//
//	"first_name" -> "First Name"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

var uniqueConstraintColumn = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// extractColumnForUniqueViolation infers the column name from a unique
// constraint name. Supported conventions:
//
//	unique_<table>_<column>    e.g. unique_todos_description
//	<table>_<column>_(key|ukey) e.g. todos_description_key
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueConstraintColumn.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

func isConnectError(err error) bool {
	var connectErr *pgconn.ConnectError
	return errors.As(err, &connectErr)
}

// HandleError converts a low-level error into the generic 500 HTTPError.
//
//   - An *errs.HTTPError is returned unchanged.
//   - A *pgconn.PgError is classified into *Error, which becomes the cause,
//     and the HTTPError code reflects the classification.
//   - Anything else (connection refused, pool closed, context canceled...)
//     is wrapped as is.
//
// Whatever the input, the client-facing message is the same.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		return errs.NewInternalServerError(err).
			WithCode(generateErrorCode(sqlErr.TableName, sqlErr.Code))
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errs.NewInternalServerError(err).WithCode("REQUEST_CANCELED")
	case ErrCode(err) == ConnectionException:
		return errs.NewInternalServerError(err).WithCode("DATABASE_UNAVAILABLE")
	}

	return errs.NewInternalServerError(err)
}
