package focus

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/tempo-app/tempo/internal/cli"
	"github.com/tempo-app/tempo/internal/logger"
	"github.com/tempo-app/tempo/internal/notifier"
	"github.com/tempo-app/tempo/internal/timer"
)

type FocusWatchCmd struct{}

func (c *FocusWatchCmd) Run(ctx *cli.Context) error {
	engine := timer.New(ctx.Store.Sessions, ctx.Clock)
	if err := engine.Attach(); err != nil {
		return err
	}
	if engine.State() == timer.StateIdle {
		fmt.Println("No focus session running. Start one with 'tempo focus start'.")
		return nil
	}
	return watch(ctx, engine)
}

// watch follows the countdown until the session completes or the user
// interrupts. Interrupting leaves the session running; remaining time is
// derived from the start timestamp, so a later watch resumes seamlessly.
func watch(ctx *cli.Context, engine *timer.Engine) error {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("\r%s  %3d%%", timer.FormatClock(engine.Remaining()), engine.Progress())
	err := engine.Run(runCtx, timer.TickInterval, func(remaining int) {
		fmt.Printf("\r%s  %3d%%", timer.FormatClock(remaining), engine.Progress())
	})
	fmt.Println()

	if errors.Is(err, context.Canceled) {
		fmt.Println("Detached. The session keeps running; 'tempo focus watch' to reattach.")
		return nil
	}
	if err != nil {
		return err
	}

	session, _ := engine.Session()
	fmt.Printf("Session complete after %s. Take a break.\n", timer.FormatClock(session.Duration))
	if nerr := notifier.New().Notify("Focus session complete"); nerr != nil {
		logger.Debug("Desktop notification skipped", "error", nerr)
	}
	return nil
}
