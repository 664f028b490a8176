package libtodo

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"
)

type (
	// A Client defines all interactions that can be performed on a todoapp server.
	Client interface {
		// Health returns the healthcheck payload of the server.
		Health() (*Health, error)
		// ListTodos returns all the todos, most recently created first.
		ListTodos() ([]*Todo, error)
		// GetTodo returns the todo for the given id.
		GetTodo(id string) (*Todo, error)
		// CreateTodo stores a new todo on the server.
		CreateTodo(params CreateParams) (*Todo, error)
		// UpdateTodo applies the given fields to an existing todo.
		UpdateTodo(id string, params UpdateParams) (*Todo, error)
		// DeleteTodo removes the todo for the given id.
		DeleteTodo(id string) error
	}

	client struct {
		http     *http.Client
		endpoint string
	}
)

// NewDefaultClient returns a new Client with default HTTP client.
func NewDefaultClient(endpoint string) (Client, error) {
	return NewClient(http.DefaultClient, endpoint)
}

// NewClient returns a new Client.
func NewClient(c *http.Client, endpoint string) (Client, error) {
	_, err := url.Parse(endpoint)
	return &client{http: c, endpoint: endpoint}, errors.Wrap(err, "could not parse endpoint")
}

func (c *client) Health() (*Health, error) {
	var health Health
	err := c.do(http.MethodGet, "/api/health", nil, &health)
	return &health, err
}

func (c *client) ListTodos() ([]*Todo, error) {
	todos := make([]*Todo, 0)
	err := c.do(http.MethodGet, "/api/todos", nil, &todos)
	return todos, err
}

func (c *client) GetTodo(id string) (*Todo, error) {
	var todo Todo
	err := c.do(http.MethodGet, path.Join("/api/todos", id), nil, &todo)
	return &todo, err
}

func (c *client) CreateTodo(params CreateParams) (*Todo, error) {
	var todo Todo
	err := c.do(http.MethodPost, "/api/todos", params, &todo)
	return &todo, err
}

func (c *client) UpdateTodo(id string, params UpdateParams) (*Todo, error) {
	var todo Todo
	err := c.do(http.MethodPut, path.Join("/api/todos", id), params, &todo)
	return &todo, err
}

func (c *client) DeleteTodo(id string) error {
	return c.do(http.MethodDelete, path.Join("/api/todos", id), nil, nil)
}

// do performs a request and parses the JSON response into v when v is not nil.
func (c *client) do(method, route string, payload, v any) error {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return errors.Wrap(err, "could not parse endpoint")
	}
	u.Path = path.Join(u.Path, route)

	//
	// Build request
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "could not serialize params")
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, u.String(), body)
	if err != nil {
		return errors.Wrap(err, "could not build request")
	}
	req.Close = true
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	//
	// Perform request
	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "could not perform request")
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return parseAPIError(res.Body, res.StatusCode)
	}

	//
	// Process response
	if v == nil {
		return nil
	}
	dec := json.NewDecoder(res.Body)
	return errors.Wrap(dec.Decode(v), "could not parse response")
}
