package todos

import (
	"fmt"

	"github.com/tempo-app/tempo/internal/cli"
	"github.com/tempo-app/tempo/internal/models"
)

type TodoDeleteCmd struct {
	ID string `arg:"" help:"Todo id (any unique prefix)."`
}

func (c *TodoDeleteCmd) Run(ctx *cli.Context) error {
	todos, err := ctx.Store.Todos.All()
	if err != nil {
		return err
	}
	todo, err := cli.MatchOne(todos, func(t models.TodoItem) string { return t.ID }, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.Todos.Delete(todo.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted todo: %s\n", todo.Text)
	return nil
}
