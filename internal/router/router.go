// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and maps paths to their handlers.
package router

import (
	"github.com/deppfellow/go-todos/internal/handler"
	"github.com/deppfellow/go-todos/internal/middleware"
	"github.com/deppfellow/go-todos/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with global middleware, the global
// error handler, and all routes.
//
// Middleware order matters:
//  1. RequestID first, so every later log line can carry it.
//  2. ContextEnhancer attaches the request logger and logs arrival.
//  3. RequestLogger logs completion (status, latency).
//  4. Recover turns panics into errors for the global error handler.
//  5. CORS and Secure add response headers.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
	)

	registerSystemRoutes(router, h)
	registerTodoRoutes(router, h)

	return router
}
