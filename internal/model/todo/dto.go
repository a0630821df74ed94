package todo

import (
	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New()

// ListTodosRequest carries no input; it exists so the listing route goes
// through the same bind/validate pipeline as the others.
type ListTodosRequest struct{}

func (r *ListTodosRequest) Validate() error {
	return nil
}

// CreateTodoRequest is the body of POST /todos.
//
// Description is a pointer so an absent field can be told apart from an
// empty string: only the former is rejected.
type CreateTodoRequest struct {
	Description *string `json:"description" validate:"required"`
}

func (r *CreateTodoRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateTodoRequest is PUT /todos/:id. ID comes from the path only.
type UpdateTodoRequest struct {
	ID          int64   `param:"id" json:"-"`
	Description *string `json:"description" validate:"required"`
}

func (r *UpdateTodoRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteTodoRequest is DELETE /todos/:id.
type DeleteTodoRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *DeleteTodoRequest) Validate() error {
	return nil
}
