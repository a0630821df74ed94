package repository

import (
	"context"

	"github.com/deppfellow/go-todos/internal/database"
	"github.com/deppfellow/go-todos/internal/model/todo"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const (
	listTodosSQL  = `SELECT id, description FROM todos`
	createTodoSQL = `INSERT INTO todos (description) VALUES ($1) RETURNING id, description`
	updateTodoSQL = `UPDATE todos SET description = $1 WHERE id = $2 RETURNING id, description`
	deleteTodoSQL = `DELETE FROM todos WHERE id = $1`
)

// TodoRepository runs the todo statements. Each method is exactly one
// round trip and never opens a transaction.
type TodoRepository struct {
	db database.Querier
}

func NewTodoRepository(db database.Querier) *TodoRepository {
	return &TodoRepository{db: db}
}

// List returns every todo in the order the database yields them.
// An empty table gives an empty, non-nil slice.
func (r *TodoRepository) List(ctx context.Context) ([]todo.Todo, error) {
	rows, err := r.db.Query(ctx, listTodosSQL)
	if err != nil {
		return nil, errors.Wrap(err, "list todos")
	}

	// AppendRows closes rows, which returns the connection to the pool.
	todos, err := pgx.AppendRows(make([]todo.Todo, 0), rows, scanTodo)
	if err != nil {
		return nil, errors.Wrap(err, "scan todos")
	}

	return todos, nil
}

// Create inserts a todo and returns the stored row with its generated id.
func (r *TodoRepository) Create(ctx context.Context, description string) (*todo.Todo, error) {
	var t todo.Todo

	err := r.db.QueryRow(ctx, createTodoSQL, description).Scan(&t.ID, &t.Description)
	if err != nil {
		return nil, errors.Wrap(err, "create todo")
	}

	return &t, nil
}

// Update replaces the description of the todo with the given id.
//
// A missing id is not an error: it returns (nil, nil) and nothing is
// created.
func (r *TodoRepository) Update(ctx context.Context, id int64, description string) (*todo.Todo, error) {
	var t todo.Todo

	err := r.db.QueryRow(ctx, updateTodoSQL, description, id).Scan(&t.ID, &t.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "update todo %d", id)
	}

	return &t, nil
}

// Delete removes the todo with the given id. Deleting an id that does not
// exist succeeds; the affected row count is returned for logging.
func (r *TodoRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteTodoSQL, id)
	if err != nil {
		return 0, errors.Wrapf(err, "delete todo %d", id)
	}

	return tag.RowsAffected(), nil
}

func scanTodo(row pgx.CollectableRow) (todo.Todo, error) {
	var t todo.Todo
	err := row.Scan(&t.ID, &t.Description)
	return t, err
}
