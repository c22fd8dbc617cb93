package focus

import (
	"fmt"
	"math"

	"github.com/gosuri/uitable"

	"github.com/tempo-app/tempo/internal/cli"
)

type FocusHistoryCmd struct {
	Limit int `short:"n" help:"Number of sessions to show." default:"10"`
}

func (c *FocusHistoryCmd) Run(ctx *cli.Context) error {
	sessions, err := ctx.Store.Sessions.Completed()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No completed focus sessions yet.")
		return nil
	}

	table := uitable.New()
	table.AddRow("ID", "STARTED", "MINUTES")
	shown := 0
	for _, s := range sessions {
		if c.Limit > 0 && shown >= c.Limit {
			break
		}
		minutes := int(math.Round(float64(s.Duration) / 60))
		table.AddRow(cli.ShortID(s.ID), s.StartTime.Local().Format("2006-01-02 15:04"), minutes)
		shown++
	}
	fmt.Println(table)
	fmt.Printf("\n%d completed sessions\n", len(sessions))
	return nil
}
