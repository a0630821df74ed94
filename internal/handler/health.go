package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/go-todos/internal/middleware"
	"github.com/deppfellow/go-todos/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthCheckTimeout bounds the database ping done by CheckHealth.
const HealthCheckTimeout = 5 * time.Second

// HealthHandler exposes a system endpoint that load balancers and uptime
// monitors use to check that the service and its database are reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns 200 when the database answers a ping and 503
// otherwise. The ping error is logged, not returned to the caller.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), HealthCheckTimeout)
	defer cancel()

	dbStart := time.Now()

	var err error
	if h.server.DB == nil {
		err = errors.New("database not initialized")
	} else {
		err = h.server.DB.Ping(ctx)
	}

	if err != nil {
		response["status"] = "unhealthy"
		response["checks"] = map[string]interface{}{
			"database": map[string]interface{}{
				"status":        "unhealthy",
				"response_time": time.Since(dbStart).String(),
			},
		}

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(dbStart)).
			Dur("total_duration", time.Since(start)).
			Msg("database health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	response["checks"] = map[string]interface{}{
		"database": map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(dbStart).String(),
		},
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
