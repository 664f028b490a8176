package repository_test

import (
	"io/ioutil"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/mdouchement/todoapp/internal/apierror"
	"github.com/mdouchement/todoapp/internal/database"
	"github.com/mdouchement/todoapp/internal/model"
	"github.com/mdouchement/todoapp/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (repository.Repository, func()) {
	tmpfile, err := ioutil.TempFile("", "todoapp.*.db")
	require.NoError(t, err)
	filename := tmpfile.Name()
	tmpfile.Close()

	db, err := database.StormOpen(filename)
	require.NoError(t, err)

	return repository.NewStorm(db), func() {
		db.Close()
		os.RemoveAll(filename)
	}
}

func TestStormCreateDefaults(t *testing.T) {
	repo, cleanup := setup(t)
	defer cleanup()

	todo, err := repo.Create(repository.CreateParams{Title: "Buy milk"})
	require.NoError(t, err)

	assert.NotEmpty(t, todo.ID)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, "", todo.Description)
	assert.Equal(t, model.PriorityMedium, todo.Priority)
	assert.False(t, todo.Completed)

	record, err := repo.Get(todo.ID)
	require.NoError(t, err)
	assert.Equal(t, todo.ID, record.ID)
	assert.Equal(t, todo.Title, record.Title)
	assert.Equal(t, todo.Priority, record.Priority)
	assert.True(t, record.CreatedAt.Equal(*todo.CreatedAt))
}

func TestStormCreateValidation(t *testing.T) {
	repo, cleanup := setup(t)
	defer cleanup()

	_, err := repo.Create(repository.CreateParams{Title: "   "})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierror.StatusCode(err))
	assert.Equal(t, "Title is required", err.Error())

	_, err = repo.Create(repository.CreateParams{Title: "Buy milk", Priority: "urgent"})
	require.Error(t, err)
	assert.Equal(t, "Priority must be low, medium or high", err.Error())

	// Nothing has been persisted.
	todos, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestStormUpdatePartial(t *testing.T) {
	repo, cleanup := setup(t)
	defer cleanup()

	todo, err := repo.Create(repository.CreateParams{Title: "Buy milk", Description: "2L", Priority: model.PriorityHigh})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	completed := true
	updated, err := repo.Update(todo.ID, repository.UpdateParams{Completed: &completed})
	require.NoError(t, err)

	assert.True(t, updated.Completed)
	assert.Equal(t, todo.Title, updated.Title)
	assert.Equal(t, todo.Description, updated.Description)
	assert.Equal(t, todo.Priority, updated.Priority)
	assert.True(t, updated.CreatedAt.Equal(*todo.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(*todo.UpdatedAt))
}

func TestStormUpdateValidation(t *testing.T) {
	repo, cleanup := setup(t)
	defer cleanup()

	todo, err := repo.Create(repository.CreateParams{Title: "Buy milk"})
	require.NoError(t, err)

	title := " "
	_, err = repo.Update(todo.ID, repository.UpdateParams{Title: &title})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierror.StatusCode(err))

	// The record is unchanged.
	record, err := repo.Get(todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", record.Title)
}

func TestStormNotFound(t *testing.T) {
	repo, cleanup := setup(t)
	defer cleanup()

	_, err := repo.Get("eb4feec8-a22a-45ca-b1e6-0822878eac4e")
	assert.Equal(t, http.StatusNotFound, apierror.StatusCode(err))

	_, err = repo.Update("eb4feec8-a22a-45ca-b1e6-0822878eac4e", repository.UpdateParams{})
	assert.Equal(t, http.StatusNotFound, apierror.StatusCode(err))

	err = repo.Delete("eb4feec8-a22a-45ca-b1e6-0822878eac4e")
	assert.Equal(t, http.StatusNotFound, apierror.StatusCode(err))
}

func TestStormDelete(t *testing.T) {
	repo, cleanup := setup(t)
	defer cleanup()

	todo, err := repo.Create(repository.CreateParams{Title: "Buy milk"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(todo.ID))

	_, err = repo.Get(todo.ID)
	assert.Equal(t, http.StatusNotFound, apierror.StatusCode(err))
}

func TestDemoList(t *testing.T) {
	repo := repository.NewDemo()

	todos, err := repo.List()
	require.NoError(t, err)
	require.Len(t, todos, 2)

	assert.Equal(t, "demo-1", todos[0].ID)
	assert.Equal(t, "Welcome to MERN Todo App!", todos[0].Title)
	assert.Equal(t, model.PriorityHigh, todos[0].Priority)
	assert.False(t, todos[0].Completed)

	assert.Equal(t, "demo-2", todos[1].ID)
	assert.Equal(t, "Set up MongoDB Atlas", todos[1].Title)
	assert.Equal(t, model.PriorityMedium, todos[1].Priority)
	assert.False(t, todos[1].Completed)

	assert.WithinDuration(t, time.Now(), *todos[0].CreatedAt, 2*time.Second)
}

func TestDemoMutations(t *testing.T) {
	repo := repository.NewDemo()

	_, err := repo.Get("demo-1")
	assert.Equal(t, http.StatusServiceUnavailable, apierror.StatusCode(err))

	_, err = repo.Create(repository.CreateParams{Title: "Buy milk"})
	assert.Equal(t, http.StatusServiceUnavailable, apierror.StatusCode(err))

	_, err = repo.Update("demo-1", repository.UpdateParams{})
	assert.Equal(t, http.StatusServiceUnavailable, apierror.StatusCode(err))

	err = repo.Delete("demo-1")
	assert.Equal(t, http.StatusServiceUnavailable, apierror.StatusCode(err))
}
