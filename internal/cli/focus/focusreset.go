package focus

import (
	"fmt"

	"github.com/tempo-app/tempo/internal/cli"
)

type FocusResetCmd struct{}

// Run drops the local view of the current session. The persisted session
// stays incomplete; a later start will conflict until it is completed.
func (c *FocusResetCmd) Run(ctx *cli.Context) error {
	session, ok, err := ctx.Store.Sessions.Current()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("No focus session to reset.")
		return nil
	}

	fmt.Printf("Detached from session %s. It remains open in storage.\n", cli.ShortID(session.ID))
	return nil
}
