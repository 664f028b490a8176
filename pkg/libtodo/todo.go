package libtodo

import "time"

type (
	// A Todo is a record rendered by the todoapp server.
	Todo struct {
		ID          string     `json:"id"`
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Completed   bool       `json:"completed"`
		Priority    string     `json:"priority"`
		CreatedAt   *time.Time `json:"createdAt"`
		UpdatedAt   *time.Time `json:"updatedAt"`
	}

	// CreateParams holds the fields sent on a creation.
	CreateParams struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority,omitempty"`
	}

	// UpdateParams holds the fields sent on an update.
	// Nil fields are not serialized so the server leaves them untouched.
	UpdateParams struct {
		Title       *string `json:"title,omitempty"`
		Description *string `json:"description,omitempty"`
		Completed   *bool   `json:"completed,omitempty"`
		Priority    *string `json:"priority,omitempty"`
	}

	// A Health is the server's healthcheck payload.
	Health struct {
		Status      string `json:"status"`
		Message     string `json:"message"`
		Timestamp   string `json:"timestamp"`
		Environment string `json:"environment"`
		Database    struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		} `json:"database"`
	}
)
