package focus

import (
	"fmt"

	"github.com/tempo-app/tempo/internal/cli"
	"github.com/tempo-app/tempo/internal/timer"
)

type FocusStatusCmd struct{}

func (c *FocusStatusCmd) Run(ctx *cli.Context) error {
	engine := timer.New(ctx.Store.Sessions, ctx.Clock)
	if err := engine.Attach(); err != nil {
		return err
	}

	if engine.State() == timer.StateIdle {
		fmt.Println("No focus session running.")
		return nil
	}

	session, _ := engine.Session()
	fmt.Printf("Session %s: %s remaining (%d%%)\n",
		cli.ShortID(session.ID), timer.FormatClock(engine.Remaining()), engine.Progress())
	return nil
}
