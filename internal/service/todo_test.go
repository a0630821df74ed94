package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/go-todos/internal/model/todo"
	"github.com/deppfellow/go-todos/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	todos     []todo.Todo
	err       error
	updateArg struct {
		id          int64
		description string
	}
	deleted []int64
}

func (f *fakeStore) List(context.Context) ([]todo.Todo, error) {
	return f.todos, f.err
}

func (f *fakeStore) Create(_ context.Context, description string) (*todo.Todo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &todo.Todo{ID: int64(len(f.todos) + 1), Description: description}, nil
}

func (f *fakeStore) Update(_ context.Context, id int64, description string) (*todo.Todo, error) {
	f.updateArg.id, f.updateArg.description = id, description
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.todos {
		if t.ID == id {
			return &todo.Todo{ID: id, Description: description}, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) (int64, error) {
	f.deleted = append(f.deleted, id)
	return 0, f.err
}

func newTestService(store *fakeStore) *TodoService {
	log := zerolog.Nop()
	return NewTodoService(&server.Server{Logger: &log}, store)
}

func ptr(s string) *string { return &s }

func TestTodoService_CreateTodo(t *testing.T) {
	svc := newTestService(&fakeStore{})

	created, err := svc.CreateTodo(context.Background(), &todo.CreateTodoRequest{Description: ptr("buy milk")})
	require.NoError(t, err)
	assert.Equal(t, &todo.Todo{ID: 1, Description: "buy milk"}, created)
}

func TestTodoService_UpdateTodo(t *testing.T) {
	store := &fakeStore{todos: []todo.Todo{{ID: 1, Description: "buy milk"}}}
	svc := newTestService(store)

	updated, err := svc.UpdateTodo(context.Background(), &todo.UpdateTodoRequest{ID: 1, Description: ptr("buy bread")})
	require.NoError(t, err)
	assert.Equal(t, &todo.Todo{ID: 1, Description: "buy bread"}, updated)
	assert.Equal(t, "buy bread", store.updateArg.description)

	missing, err := svc.UpdateTodo(context.Background(), &todo.UpdateTodoRequest{ID: 999, Description: ptr("x")})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTodoService_DeleteTodo(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	require.NoError(t, svc.DeleteTodo(context.Background(), &todo.DeleteTodoRequest{ID: 7}))
	assert.Equal(t, []int64{7}, store.deleted)
}

func TestTodoService_PropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := newTestService(&fakeStore{err: storeErr})
	ctx := context.Background()

	_, err := svc.ListTodos(ctx)
	assert.ErrorIs(t, err, storeErr)

	_, err = svc.CreateTodo(ctx, &todo.CreateTodoRequest{Description: ptr("x")})
	assert.ErrorIs(t, err, storeErr)

	_, err = svc.UpdateTodo(ctx, &todo.UpdateTodoRequest{ID: 1, Description: ptr("x")})
	assert.ErrorIs(t, err, storeErr)

	assert.ErrorIs(t, svc.DeleteTodo(ctx, &todo.DeleteTodoRequest{ID: 1}), storeErr)
}
