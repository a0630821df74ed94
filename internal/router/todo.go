package router

import (
	"net/http"

	"github.com/deppfellow/go-todos/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerTodoRoutes(r *echo.Echo, h *handler.Handlers) {
	todos := r.Group("/todos")

	todos.GET("", handler.Handle(h.Todo.ListTodos, http.StatusOK))
	todos.POST("", handler.Handle(h.Todo.CreateTodo, http.StatusOK))
	todos.PUT("/:id", handler.Handle(h.Todo.UpdateTodo, http.StatusOK))
	todos.DELETE("/:id", handler.HandleNoContent(h.Todo.DeleteTodo, http.StatusNoContent))
}
