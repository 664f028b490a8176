package libtodo

import (
	"encoding/json"
	"io"
)

// An APIError represents an HTTP error returned by the todoapp server.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
}

func parseAPIError(r io.Reader, code int) error {
	var apierr APIError
	dec := json.NewDecoder(r)
	if err := dec.Decode(&apierr); err != nil {
		return err
	}
	apierr.StatusCode = code
	return &apierr
}

func (e *APIError) Error() string {
	return e.Message
}
