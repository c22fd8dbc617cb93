package models

import (
	"fmt"
	"strings"
	"time"
)

type Habit struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Habit) Validate() error {
	if strings.TrimSpace(h.Label) == "" {
		return fmt.Errorf("habit label cannot be empty")
	}
	return nil
}

// HabitPatch enumerates the mutable fields of a Habit. A nil field is left
// untouched by an update.
type HabitPatch struct {
	Label   *string
	Enabled *bool
}

// HabitCompletion records whether a habit was completed on a given day.
// HabitLabel is denormalized at toggle time so history survives habit renames.
type HabitCompletion struct {
	ID         string    `json:"id"`
	HabitID    string    `json:"habit_id"`
	HabitLabel string    `json:"habit_label"`
	Date       string    `json:"date"` // YYYY-MM-DD format
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (c *HabitCompletion) Validate() error {
	if c.HabitID == "" {
		return fmt.Errorf("habit completion requires a habit id")
	}
	if _, err := time.Parse(DateFormat, c.Date); err != nil {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	return nil
}
