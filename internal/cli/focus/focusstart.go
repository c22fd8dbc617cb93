package focus

import (
	"fmt"

	"github.com/tempo-app/tempo/internal/cli"
	"github.com/tempo-app/tempo/internal/timer"
)

type FocusStartCmd struct {
	Watch bool `short:"w" help:"Stay attached and count down in the terminal."`
}

func (c *FocusStartCmd) Run(ctx *cli.Context) error {
	engine := timer.New(ctx.Store.Sessions, ctx.Clock)
	if err := engine.Start(); err != nil {
		return err
	}

	session, _ := engine.Session()
	fmt.Printf("Started focus session %s (%s)\n", cli.ShortID(session.ID), timer.FormatClock(session.Duration))

	if c.Watch {
		return watch(ctx, engine)
	}
	fmt.Println("Run 'tempo focus watch' to follow the countdown.")
	return nil
}
