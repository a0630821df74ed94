package handler

import (
	"github.com/deppfellow/go-todos/internal/model/todo"
	"github.com/deppfellow/go-todos/internal/server"
	"github.com/deppfellow/go-todos/internal/service"
	"github.com/labstack/echo/v4"
)

// TodoHandler serves the /todos routes.
type TodoHandler struct {
	Handler
	todoService *service.TodoService
}

// NewTodoHandler constructs a TodoHandler.
func NewTodoHandler(s *server.Server, todoService *service.TodoService) *TodoHandler {
	return &TodoHandler{
		Handler:     NewHandler(s),
		todoService: todoService,
	}
}

// ListTodos responds with every todo, or [] when there are none.
func (h *TodoHandler) ListTodos(c echo.Context, _ *todo.ListTodosRequest) ([]todo.Todo, error) {
	return h.todoService.ListTodos(c.Request().Context())
}

// CreateTodo inserts a todo and responds with the stored row.
func (h *TodoHandler) CreateTodo(c echo.Context, req *todo.CreateTodoRequest) (*todo.Todo, error) {
	return h.todoService.CreateTodo(c.Request().Context(), req)
}

// UpdateTodo responds with JSON null when the id matches nothing.
func (h *TodoHandler) UpdateTodo(c echo.Context, req *todo.UpdateTodoRequest) (*todo.Todo, error) {
	return h.todoService.UpdateTodo(c.Request().Context(), req)
}

// DeleteTodo removes a todo. An unknown id is not an error.
func (h *TodoHandler) DeleteTodo(c echo.Context, req *todo.DeleteTodoRequest) error {
	return h.todoService.DeleteTodo(c.Request().Context(), req)
}
