package habits

import (
	"fmt"

	"github.com/tempo-app/tempo/internal/cli"
	"github.com/tempo-app/tempo/internal/models"
)

type HabitToggleCmd struct {
	ID   string `arg:"" help:"Habit id (any unique prefix)."`
	Date string `short:"d" help:"Calendar date (YYYY-MM-DD). Defaults to today."`
	Undo bool   `help:"Mark the habit as not completed for the date."`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Today()
	}

	habits, err := ctx.Store.Habits.All()
	if err != nil {
		return err
	}
	habit, err := cli.MatchOne(habits, func(h models.Habit) string { return h.ID }, c.ID)
	if err != nil {
		return err
	}

	completion, err := ctx.Store.Completions.Toggle(habit.ID, habit.Label, date, !c.Undo)
	if err != nil {
		return err
	}

	if completion.Completed {
		fmt.Printf("Completed %s for %s\n", habit.Label, completion.Date)
	} else {
		fmt.Printf("Unmarked %s for %s\n", habit.Label, completion.Date)
	}
	return nil
}
