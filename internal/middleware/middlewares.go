package middleware

import (
	"github.com/deppfellow/go-todos/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server,
// so router setup gets one object instead of many.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers and
	// the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches a request-scoped logger and logs each
	// request as it arrives.
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components using the application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
