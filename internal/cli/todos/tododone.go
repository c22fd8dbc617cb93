package todos

import (
	"fmt"

	"github.com/tempo-app/tempo/internal/cli"
	"github.com/tempo-app/tempo/internal/models"
)

type TodoDoneCmd struct {
	ID   string `arg:"" help:"Todo id (any unique prefix)."`
	Undo bool   `help:"Mark the todo as not done."`
}

func (c *TodoDoneCmd) Run(ctx *cli.Context) error {
	todos, err := ctx.Store.Todos.All()
	if err != nil {
		return err
	}
	todo, err := cli.MatchOne(todos, func(t models.TodoItem) string { return t.ID }, c.ID)
	if err != nil {
		return err
	}

	done := !c.Undo
	updated, err := ctx.Store.Todos.Update(todo.ID, models.TodoPatch{Done: &done})
	if err != nil {
		return err
	}

	if updated.Done {
		fmt.Printf("Done: %s\n", updated.Text)
	} else {
		fmt.Printf("Reopened: %s\n", updated.Text)
	}
	return nil
}
