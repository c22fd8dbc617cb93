package habits

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/tempo-app/tempo/internal/cli"
)

type HabitAddCmd struct {
	Label string `arg:"" optional:"" help:"Habit label. Prompts when omitted."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if c.Label == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Habit to track?").Value(&c.Label),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	habit, err := ctx.Store.Habits.Create(c.Label)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit %s: %s\n", cli.ShortID(habit.ID), habit.Label)
	return nil
}
