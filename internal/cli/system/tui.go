package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tempo-app/tempo/internal/cli"
	"github.com/tempo-app/tempo/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Clock), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
