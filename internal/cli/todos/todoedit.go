package todos

import (
	"fmt"

	"github.com/tempo-app/tempo/internal/cli"
	"github.com/tempo-app/tempo/internal/models"
)

type TodoEditCmd struct {
	ID   string `arg:"" help:"Todo id (any unique prefix)."`
	Text string `arg:"" help:"New todo text."`
}

func (c *TodoEditCmd) Run(ctx *cli.Context) error {
	todos, err := ctx.Store.Todos.All()
	if err != nil {
		return err
	}
	todo, err := cli.MatchOne(todos, func(t models.TodoItem) string { return t.ID }, c.ID)
	if err != nil {
		return err
	}

	updated, err := ctx.Store.Todos.Update(todo.ID, models.TodoPatch{Text: &c.Text})
	if err != nil {
		return err
	}

	fmt.Printf("Updated todo %s: %s\n", cli.ShortID(updated.ID), updated.Text)
	return nil
}
