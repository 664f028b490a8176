// Package repository abstracts the todos persistence so HTTP handlers stay
// storage-agnostic. The implementation is picked once at startup: the Storm
// backed one when the database opened, the static demo one otherwise.
package repository

import (
	"github.com/mdouchement/todoapp/internal/model"
)

type (
	// A Repository exposes all interactions with the todos collection.
	Repository interface {
		// List returns all todos, most recently created first.
		List() ([]*model.Todo, error)
		// Get returns the todo for the given id.
		Get(id string) (*model.Todo, error)
		// Create validates the given fields and stores a new todo.
		Create(params CreateParams) (*model.Todo, error)
		// Update applies the present fields to an existing todo and re-validates it.
		Update(id string, params UpdateParams) (*model.Todo, error)
		// Delete removes the todo for the given id.
		Delete(id string) error
	}

	// CreateParams holds the accepted fields for a creation.
	CreateParams struct {
		Title       string         `json:"title"`
		Description string         `json:"description"`
		Priority    model.Priority `json:"priority"`
	}

	// UpdateParams holds the accepted fields for an update.
	// Nil fields are left untouched on the record.
	UpdateParams struct {
		Title       *string         `json:"title"`
		Description *string         `json:"description"`
		Completed   *bool           `json:"completed"`
		Priority    *model.Priority `json:"priority"`
	}
)
