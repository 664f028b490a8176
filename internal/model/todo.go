package model

import "strings"

// A Priority ranks a todo against the others.
type Priority string

// Supported priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid returns true if the priority is one of the supported values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// A Todo represents a database record and the rendered API response.
type Todo struct {
	Base `msgpack:",inline" storm:"inline"`

	Title       string   `json:"title"       msgpack:"title"`
	Description string   `json:"description" msgpack:"description"`
	Completed   bool     `json:"completed"   msgpack:"completed"   storm:"index"`
	Priority    Priority `json:"priority"    msgpack:"priority"    storm:"index"`
}

// Validate checks field constraints before the record is written.
// It returns one message per invalid field.
func (t *Todo) Validate() []string {
	var messages []string

	if strings.TrimSpace(t.Title) == "" {
		messages = append(messages, "Title is required")
	}

	if !t.Priority.Valid() {
		messages = append(messages, "Priority must be low, medium or high")
	}

	return messages
}
