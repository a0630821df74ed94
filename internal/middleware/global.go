package middleware

import (
	"net/http"

	"github.com/deppfellow/go-todos/internal/errs"
	"github.com/deppfellow/go-todos/internal/server"
	"github.com/deppfellow/go-todos/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups global middleware and the global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware. The default origin list is "*",
// which makes the policy permissive for every route.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
	})
}

// RequestLogger returns Echo's request logger middleware with a zerolog
// LogValuesFunc. It produces one "API" line per request once it completes.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// When the handler returns an error the response has not been
			// written yet; the global error handler decides the status.
			// Reference: https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			if v.Error != nil {
				statusCode = statusFromError(v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(causeOf(v.Error))
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover returns Echo's panic recovery middleware. A recovered panic is
// passed on as an error and rendered as a 500 by GlobalErrorHandler.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true,
	})
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// Every error a handler returns ends up here. It is resolved to an
// *errs.HTTPError, the original error is logged with its stack, and the
// client gets {"error": "<status text>"} and nothing else.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := toHTTPError(err)

	logger := GetLogger(c)

	var event *zerolog.Event
	if httpErr.Status >= http.StatusInternalServerError {
		event = logger.Error().Stack()
	} else {
		event = logger.Warn()
	}

	event = event.
		Err(causeOf(err)).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code)

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := sqlerr.ConvertPgError(pgerr)
		event = event.
			Str("sqlstate", sqlErr.DatabaseCode).
			Str("sql_error", string(sqlErr.Code)).
			Str("table", sqlErr.TableName).
			Str("constraint", sqlErr.ConstraintName).
			Str("detail", sqlerr.Describe(sqlErr))
	}

	event.Msg(httpErr.Message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}

	_ = c.JSON(httpErr.Status, httpErr.Body())
}

// toHTTPError resolves any error into the response it should produce.
//
//   - *errs.HTTPError: used as is.
//   - *echo.HTTPError (unknown route, wrong method, ...): same status,
//     standard status text.
//   - anything else: classified by sqlerr.HandleError into a 500.
func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		switch {
		case echoErr.Code == http.StatusNotFound:
			return errs.NewNotFoundError(err)
		case echoErr.Code == http.StatusMethodNotAllowed:
			return errs.NewMethodNotAllowedError(err)
		case echoErr.Code >= 400 && echoErr.Code < 600:
			return errs.New(echoErr.Code, err)
		}
		return errs.NewInternalServerError(err)
	}

	if errors.As(sqlerr.HandleError(err), &httpErr) {
		return httpErr
	}
	return errs.NewInternalServerError(err)
}

func statusFromError(err error) int {
	return toHTTPError(err).Status
}

// causeOf returns the error worth logging: the cause behind an
// *errs.HTTPError (whose own message is only the status text), or err.
func causeOf(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) && httpErr.Cause != nil {
		return httpErr.Cause
	}
	return err
}
