package todos

import (
	"fmt"

	"github.com/gosuri/uitable"

	"github.com/tempo-app/tempo/internal/cli"
	"github.com/tempo-app/tempo/internal/models"
	"github.com/tempo-app/tempo/internal/progress"
)

type TodoListCmd struct {
	All bool `short:"a" help:"Include completed todos."`
}

func (c *TodoListCmd) Run(ctx *cli.Context) error {
	todos, err := ctx.Store.Todos.All()
	if err != nil {
		return err
	}
	if len(todos) == 0 {
		fmt.Println("No todos. Add one with 'tempo todo add'.")
		return nil
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("ID", "", "TEXT", "DONE AT")
	shown := 0
	for _, t := range todos {
		if t.Done && !c.All {
			continue
		}
		mark := "○"
		doneAt := ""
		if t.Done {
			mark = "✓"
			if t.DoneAt != nil {
				doneAt = t.DoneAt.Local().Format("2006-01-02 15:04")
			}
		}
		table.AddRow(cli.ShortID(t.ID), mark, t.Text, doneAt)
		shown++
	}
	if shown == 0 {
		fmt.Println("All todos are done.")
	} else {
		fmt.Println(table)
	}

	pct := progress.Percent(todos, func(t models.TodoItem) bool { return t.Done })
	fmt.Printf("\n%d todos, %d%% complete\n", len(todos), pct)
	return nil
}
