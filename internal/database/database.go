package database

import (
	"github.com/mdouchement/todoapp/internal/model"
)

type (
	// A Client can interacts with the database.
	Client interface {
		// Save inserts or updates the entry in database with the given model.
		Save(m model.Model) error
		// Delete deletes the entry in database with the given model.
		Delete(m model.Model) error
		// Close the database.
		Close() error
		// IsNotFound returns true if err is a not found error.
		IsNotFound(err error) bool

		TodoInteraction
	}

	// A TodoInteraction defines all the methods used to interact with todo record(s).
	TodoInteraction interface {
		// FindTodo returns the todo for the given id (UUID).
		FindTodo(id string) (*model.Todo, error)
		// FindTodos returns all the todos ordered by creation date, most recent first.
		FindTodos() ([]*model.Todo, error)
	}
)
