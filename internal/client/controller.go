package client

import (
	"strings"
	"sync"

	"github.com/mdouchement/todoapp/pkg/libtodo"
)

// A State describes the controller's fetch cycle.
type State int

// Controller states.
const (
	StateLoading State = iota
	StateReady
	StateError
)

// A Controller mirrors the server's todo list and issues mutations.
// It holds a disposable snapshot that is replaced by a full re-fetch after
// every mutation; it never applies optimistic updates.
type Controller struct {
	client libtodo.Client

	mu     sync.Mutex
	state  State
	errmsg string
	todos  []*libtodo.Todo
}

// NewController returns a new Controller. The list is empty until the first
// call to Refresh.
func NewController(client libtodo.Client) *Controller {
	return &Controller{
		client: client,
		state:  StateLoading,
		todos:  make([]*libtodo.Todo, 0),
	}
}

// State returns the current state of the fetch cycle.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the message of the last failed action, or an empty string.
func (c *Controller) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errmsg
}

// Todos returns the current snapshot of the list.
func (c *Controller) Todos() []*libtodo.Todo {
	c.mu.Lock()
	defer c.mu.Unlock()

	todos := make([]*libtodo.Todo, len(c.todos))
	copy(todos, c.todos)
	return todos
}

// Refresh replaces the snapshot with the server's full list.
// On failure the previous snapshot is kept and an error message is surfaced;
// a successful fetch clears any previous error.
func (c *Controller) Refresh() {
	c.mu.Lock()
	c.state = StateLoading
	c.mu.Unlock()

	todos, err := c.client.ListTodos()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateError
		c.errmsg = "Failed to fetch todos"
		return
	}
	c.todos = todos
	c.state = StateReady
	c.errmsg = ""
}

// AddItem creates a todo with the given title and default fields, then
// re-fetches the list. Whitespace-only titles are ignored.
func (c *Controller) AddItem(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}

	_, err := c.client.CreateTodo(libtodo.CreateParams{
		Title:       title,
		Description: "",
		Priority:    "medium",
	})
	if err != nil {
		c.fail("Failed to add todo")
		return
	}
	c.Refresh()
}

// ToggleItem flips the completed flag of a todo, then re-fetches the list.
func (c *Controller) ToggleItem(id string, currentCompleted bool) {
	completed := !currentCompleted
	_, err := c.client.UpdateTodo(id, libtodo.UpdateParams{Completed: &completed})
	if err != nil {
		c.fail("Failed to update todo")
		return
	}
	c.Refresh()
}

// SetDescription replaces the description of a todo, then re-fetches the list.
func (c *Controller) SetDescription(id, description string) {
	_, err := c.client.UpdateTodo(id, libtodo.UpdateParams{Description: &description})
	if err != nil {
		c.fail("Failed to update todo")
		return
	}
	c.Refresh()
}

// RemoveItem deletes a todo, then re-fetches the list.
func (c *Controller) RemoveItem(id string) {
	if err := c.client.DeleteTodo(id); err != nil {
		c.fail("Failed to delete todo")
		return
	}
	c.Refresh()
}

func (c *Controller) fail(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateError
	c.errmsg = message
}
