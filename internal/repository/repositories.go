package repository

import (
	"github.com/deppfellow/go-todos/internal/database"
	"github.com/deppfellow/go-todos/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Todos *TodoRepository
}

// NewRepositories builds the repositories on top of the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesWithQuerier(s.DB.Pool)
}

// NewRepositoriesWithQuerier builds the repositories on top of any Querier.
func NewRepositoriesWithQuerier(db database.Querier) *Repositories {
	return &Repositories{
		Todos: NewTodoRepository(db),
	}
}
