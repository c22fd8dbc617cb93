package habits

import (
	"fmt"

	"github.com/gosuri/uitable"

	"github.com/tempo-app/tempo/internal/cli"
	"github.com/tempo-app/tempo/internal/models"
	"github.com/tempo-app/tempo/internal/progress"
)

type HabitListCmd struct {
	Date string `short:"d" help:"Show completion status for this date (YYYY-MM-DD). Defaults to today."`
	All  bool   `short:"a" help:"Include disabled habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Today()
	}

	habits, err := ctx.Store.Habits.All()
	if err != nil {
		return err
	}
	completions, err := ctx.Store.Completions.ForDate(date)
	if err != nil {
		return err
	}

	completedByHabit := make(map[string]bool, len(completions))
	for _, comp := range completions {
		completedByHabit[comp.HabitID] = comp.Completed
	}

	if len(habits) == 0 {
		fmt.Println("No habits. Add one with 'tempo habit add'.")
		return nil
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("ID", "", "LABEL", "STATUS")
	var tracked []models.Habit
	for _, h := range habits {
		if !h.Enabled && !c.All {
			continue
		}
		status := "enabled"
		mark := "○"
		if !h.Enabled {
			status = "disabled"
			mark = " "
		} else if completedByHabit[h.ID] {
			mark = "✓"
		}
		table.AddRow(cli.ShortID(h.ID), mark, h.Label, status)
		if h.Enabled {
			tracked = append(tracked, h)
		}
	}
	fmt.Println(table)

	pct := progress.Percent(tracked, func(h models.Habit) bool { return completedByHabit[h.ID] })
	fmt.Printf("\n%s: %d%% of habits complete\n", date, pct)
	return nil
}
