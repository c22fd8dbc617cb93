package models

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the calendar-date layout used everywhere a day is identified.
const DateFormat = "2006-01-02"

type TodoItem struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Done      bool       `json:"done"`
	DoneAt    *time.Time `json:"done_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (t *TodoItem) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("todo text cannot be empty")
	}
	return nil
}

// TodoPatch enumerates the mutable fields of a TodoItem. A nil field is left
// untouched by an update.
type TodoPatch struct {
	Text *string
	Done *bool
}
