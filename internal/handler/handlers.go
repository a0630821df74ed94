package handler

import (
	"github.com/deppfellow/go-todos/internal/server"
	"github.com/deppfellow/go-todos/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Health *HealthHandler
	Todo   *TodoHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Todo:   NewTodoHandler(s, services.Todo),
	}
}
