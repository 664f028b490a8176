package libtodo_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mdouchement/todoapp/pkg/libtodo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientListTodos(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/todos", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"42","title":"Buy milk","priority":"medium","completed":false}]`))
	}))
	defer ts.Close()

	client, err := libtodo.NewDefaultClient(ts.URL)
	require.NoError(t, err)

	todos, err := client.ListTodos()
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "Buy milk", todos[0].Title)
}

func TestClientCreateTodo(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/todos", r.URL.Path)

		var params libtodo.CreateParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "Buy milk", params.Title)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"42","title":"Buy milk","priority":"medium","completed":false}`))
	}))
	defer ts.Close()

	client, err := libtodo.NewDefaultClient(ts.URL)
	require.NoError(t, err)

	todo, err := client.CreateTodo(libtodo.CreateParams{Title: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, "42", todo.ID)
	assert.Equal(t, "medium", todo.Priority)
}

func TestClientUpdateTodoPartialPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/todos/42", r.URL.Path)

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, map[string]any{"completed": true}, raw)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"42","title":"Buy milk","priority":"medium","completed":true}`))
	}))
	defer ts.Close()

	client, err := libtodo.NewDefaultClient(ts.URL)
	require.NoError(t, err)

	completed := true
	todo, err := client.UpdateTodo("42", libtodo.UpdateParams{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, todo.Completed)
}

func TestClientAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Todo not found"}`))
	}))
	defer ts.Close()

	client, err := libtodo.NewDefaultClient(ts.URL)
	require.NoError(t, err)

	_, err = client.GetTodo("42")
	require.Error(t, err)

	apierr, ok := err.(*libtodo.APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apierr.StatusCode)
	assert.Equal(t, "Todo not found", apierr.Message)
}

func TestClientDeleteTodo(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/todos/42", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Todo removed"}`))
	}))
	defer ts.Close()

	client, err := libtodo.NewDefaultClient(ts.URL)
	require.NoError(t, err)

	assert.NoError(t, client.DeleteTodo("42"))
}
