package service

import (
	"context"

	"github.com/deppfellow/go-todos/internal/model/todo"
	"github.com/deppfellow/go-todos/internal/server"
	"github.com/rs/zerolog"
)

// TodoStore is what TodoService needs from the persistence layer.
// *repository.TodoRepository implements it.
type TodoStore interface {
	List(ctx context.Context) ([]todo.Todo, error)
	Create(ctx context.Context, description string) (*todo.Todo, error)
	Update(ctx context.Context, id int64, description string) (*todo.Todo, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// TodoService passes validated requests to the store. There are no
// business rules for todos; it only records what happened.
type TodoService struct {
	server *server.Server
	store  TodoStore
}

func NewTodoService(s *server.Server, store TodoStore) *TodoService {
	return &TodoService{
		server: s,
		store:  store,
	}
}

func (s *TodoService) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	return s.store.List(ctx)
}

func (s *TodoService) CreateTodo(ctx context.Context, req *todo.CreateTodoRequest) (*todo.Todo, error) {
	created, err := s.store.Create(ctx, *req.Description)
	if err != nil {
		return nil, err
	}

	s.logger(ctx).Debug().Int64("todo_id", created.ID).Msg("todo created")
	return created, nil
}

// UpdateTodo returns (nil, nil) when no todo has the requested id.
func (s *TodoService) UpdateTodo(ctx context.Context, req *todo.UpdateTodoRequest) (*todo.Todo, error) {
	updated, err := s.store.Update(ctx, req.ID, *req.Description)
	if err != nil {
		return nil, err
	}

	if updated == nil {
		s.logger(ctx).Debug().Int64("todo_id", req.ID).Msg("todo to update not found")
	}
	return updated, nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, req *todo.DeleteTodoRequest) error {
	deleted, err := s.store.Delete(ctx, req.ID)
	if err != nil {
		return err
	}

	s.logger(ctx).Debug().
		Int64("todo_id", req.ID).
		Int64("rows_affected", deleted).
		Msg("todo delete executed")
	return nil
}

// logger prefers the request-scoped logger stored in ctx by the context
// enhancer middleware.
func (s *TodoService) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.server.Logger
}
