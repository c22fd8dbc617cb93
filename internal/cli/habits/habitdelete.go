package habits

import (
	"fmt"

	"github.com/tempo-app/tempo/internal/cli"
	"github.com/tempo-app/tempo/internal/models"
)

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit id (any unique prefix)."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.Habits.All()
	if err != nil {
		return err
	}
	habit, err := cli.MatchOne(habits, func(h models.Habit) string { return h.ID }, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.Habits.Delete(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s (completion history kept)\n", habit.Label)
	return nil
}
