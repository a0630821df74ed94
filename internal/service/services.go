package service

import (
	"github.com/deppfellow/go-todos/internal/repository"
	"github.com/deppfellow/go-todos/internal/server"
)

type Services struct {
	Todo *TodoService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Todo: NewTodoService(s, repos.Todos),
	}, nil
}
