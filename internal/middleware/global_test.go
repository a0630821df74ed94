package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/go-todos/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unknown route", echo.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrong method", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"echo bad request", echo.ErrBadRequest, http.StatusBadRequest, "BAD_REQUEST"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"canceled", fmt.Errorf("list todos: %w", context.Canceled), http.StatusInternalServerError, "REQUEST_CANCELED"},
		{
			"already resolved",
			errs.NewInternalServerError(errors.New("bind")).WithCode("REQUEST_BIND_FAILED"),
			http.StatusInternalServerError,
			"REQUEST_BIND_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := toHTTPError(tt.err)
			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.code, httpErr.Code)
			assert.Equal(t, http.StatusText(tt.status), httpErr.Message)
		})
	}
}

func TestCauseOf(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	assert.Equal(t, cause, causeOf(errs.NewInternalServerError(cause)))
	assert.Equal(t, cause, causeOf(cause))
}

func TestGlobalErrorHandler_HeadHasNoBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodHead, "/todos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	(&GlobalMiddlewares{}).GlobalErrorHandler(errors.New("boom"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGlobalErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = c.NoContent(http.StatusNoContent)
	(&GlobalMiddlewares{}).GlobalErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotNil(t, GetLogger(c))
	assert.Empty(t, GetRequestID(c))
}
