package repository

import (
	"strings"

	"github.com/mdouchement/todoapp/internal/apierror"
	"github.com/mdouchement/todoapp/internal/database"
	"github.com/mdouchement/todoapp/internal/model"
	"github.com/pkg/errors"
)

type strm struct {
	db database.Client
}

// NewStorm returns a Repository backed by the given database client.
func NewStorm(db database.Client) Repository {
	return &strm{
		db: db,
	}
}

// List returns all todos, most recently created first.
func (r *strm) List() ([]*model.Todo, error) {
	todos, err := r.db.FindTodos()
	return todos, errors.Wrap(err, "could not list todos")
}

// Get returns the todo for the given id.
func (r *strm) Get(id string) (*model.Todo, error) {
	todo, err := r.db.FindTodo(id)
	if err != nil {
		if r.db.IsNotFound(err) {
			return nil, apierror.NotFound("Todo not found")
		}
		return nil, errors.Wrap(err, "could not get todo")
	}
	return todo, nil
}

// Create validates the given fields and stores a new todo.
func (r *strm) Create(params CreateParams) (*model.Todo, error) {
	todo := &model.Todo{
		Title:       strings.TrimSpace(params.Title),
		Description: strings.TrimSpace(params.Description),
		Priority:    params.Priority,
	}
	if todo.Priority == "" {
		todo.Priority = model.PriorityMedium
	}

	if messages := todo.Validate(); len(messages) > 0 {
		return nil, apierror.Validation(messages)
	}

	if err := r.db.Save(todo); err != nil {
		return nil, errors.Wrap(err, "could not create todo")
	}
	return todo, nil
}

// Update applies the present fields to an existing todo and re-validates it.
func (r *strm) Update(id string, params UpdateParams) (*model.Todo, error) {
	todo, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		todo.Title = strings.TrimSpace(*params.Title)
	}
	if params.Description != nil {
		todo.Description = strings.TrimSpace(*params.Description)
	}
	if params.Completed != nil {
		todo.Completed = *params.Completed
	}
	if params.Priority != nil {
		todo.Priority = *params.Priority
	}

	if messages := todo.Validate(); len(messages) > 0 {
		return nil, apierror.Validation(messages)
	}

	if err := r.db.Save(todo); err != nil {
		return nil, errors.Wrap(err, "could not update todo")
	}
	return todo, nil
}

// Delete removes the todo for the given id.
func (r *strm) Delete(id string) error {
	todo, err := r.Get(id)
	if err != nil {
		return err
	}

	return errors.Wrap(r.db.Delete(todo), "could not delete todo")
}
