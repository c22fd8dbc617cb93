package habits

import (
	"fmt"

	"github.com/tempo-app/tempo/internal/cli"
	"github.com/tempo-app/tempo/internal/models"
)

type HabitEnableCmd struct {
	ID      string `arg:"" help:"Habit id (any unique prefix)."`
	Disable bool   `help:"Disable instead of enable. Disabled habits are hidden from tracking views but kept in storage."`
}

func (c *HabitEnableCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.Habits.All()
	if err != nil {
		return err
	}
	habit, err := cli.MatchOne(habits, func(h models.Habit) string { return h.ID }, c.ID)
	if err != nil {
		return err
	}

	enabled := !c.Disable
	updated, err := ctx.Store.Habits.Update(habit.ID, models.HabitPatch{Enabled: &enabled})
	if err != nil {
		return err
	}

	if updated.Enabled {
		fmt.Printf("Enabled habit: %s\n", updated.Label)
	} else {
		fmt.Printf("Disabled habit: %s\n", updated.Label)
	}
	return nil
}
