// Package repository handles all interactions with the database.
//
// It contains the SQL statements and the methods that run them,
// abstracting SQL away from the service layer. Every statement is
// parameterized; user input never becomes part of the SQL text.
package repository
