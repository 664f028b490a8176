package repository

import (
	"time"

	"github.com/mdouchement/todoapp/internal/apierror"
	"github.com/mdouchement/todoapp/internal/model"
)

type demo struct{}

// NewDemo returns a Repository used when no database is available.
// List serves two fixed demonstration records; every other operation fails
// with a service unavailable error.
func NewDemo() Repository {
	return demo{}
}

// List returns the two fixed demonstration records, stamped at request time.
func (demo) List() ([]*model.Todo, error) {
	now := time.Now().UTC()

	return []*model.Todo{
		{
			Base: model.Base{
				ID:        "demo-1",
				CreatedAt: &now,
				UpdatedAt: &now,
			},
			Title:       "Welcome to MERN Todo App!",
			Description: "This is a demo todo. Connect to MongoDB for full functionality.",
			Completed:   false,
			Priority:    model.PriorityHigh,
		},
		{
			Base: model.Base{
				ID:        "demo-2",
				CreatedAt: &now,
				UpdatedAt: &now,
			},
			Title:       "Set up MongoDB Atlas",
			Description: "Create a MongoDB Atlas account and configure the connection string.",
			Completed:   false,
			Priority:    model.PriorityMedium,
		},
	}, nil
}

// Get always fails, the demo records are not addressable.
func (demo) Get(id string) (*model.Todo, error) {
	return nil, apierror.ServiceUnavailable("Database not connected")
}

// Create always fails, nothing can be persisted without a database.
func (demo) Create(params CreateParams) (*model.Todo, error) {
	return nil, apierror.ServiceUnavailable("Database not connected")
}

// Update always fails, nothing can be persisted without a database.
func (demo) Update(id string, params UpdateParams) (*model.Todo, error) {
	return nil, apierror.ServiceUnavailable("Database not connected")
}

// Delete always fails, nothing can be persisted without a database.
func (demo) Delete(id string) error {
	return apierror.ServiceUnavailable("Database not connected")
}
