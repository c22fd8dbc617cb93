package todos

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/tempo-app/tempo/internal/cli"
)

type TodoAddCmd struct {
	Text string `arg:"" optional:"" help:"Todo text. Prompts when omitted."`
}

func (c *TodoAddCmd) Run(ctx *cli.Context) error {
	if c.Text == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("What needs doing?").Value(&c.Text),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	todo, err := ctx.Store.Todos.Create(c.Text)
	if err != nil {
		return err
	}

	fmt.Printf("Added todo %s: %s\n", cli.ShortID(todo.ID), todo.Text)
	return nil
}
