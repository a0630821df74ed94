// Package todo holds the todo entity and the request payloads
// the HTTP layer binds into.
package todo

// Todo is a row of the todos table.
//
// ID is generated by the database and never changes after insert.
// Description is free-form and may be empty.
type Todo struct {
	ID          int64  `json:"id" db:"id"`
	Description string `json:"description" db:"description"`
}
