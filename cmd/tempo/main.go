package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/tempo-app/tempo/internal/cli"
	"github.com/tempo-app/tempo/internal/cli/focus"
	"github.com/tempo-app/tempo/internal/cli/habits"
	"github.com/tempo-app/tempo/internal/cli/system"
	"github.com/tempo-app/tempo/internal/cli/todos"
	"github.com/tempo-app/tempo/internal/clock"
	"github.com/tempo-app/tempo/internal/errors"
	"github.com/tempo-app/tempo/internal/logger"
	"github.com/tempo-app/tempo/internal/repo"
	"github.com/tempo-app/tempo/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Store   string `help:"Storage location: a directory (default), a *.db SQLite path, or a postgres:// connection string (credentials via PG* env vars, never inline)." env:"TEMPO_STORE"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   system.InitCmd   `cmd:"" help:"Initialize tempo storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Todo   struct {
		Add    todos.TodoAddCmd    `cmd:"" help:"Add a todo."`
		List   todos.TodoListCmd   `cmd:"" help:"List todos."`
		Done   todos.TodoDoneCmd   `cmd:"" help:"Mark a todo done (or not done with --undo)."`
		Edit   todos.TodoEditCmd   `cmd:"" help:"Edit a todo's text."`
		Delete todos.TodoDeleteCmd `cmd:"" help:"Delete a todo."`
	} `cmd:"" help:"Manage the todo sprint list."`
	Habit struct {
		Add    habits.HabitAddCmd    `cmd:"" help:"Add a habit."`
		List   habits.HabitListCmd   `cmd:"" help:"List habits with today's status."`
		Toggle habits.HabitToggleCmd `cmd:"" help:"Mark a habit completed for a date."`
		Enable habits.HabitEnableCmd `cmd:"" help:"Enable or disable a habit."`
		Delete habits.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage daily habits."`
	Focus struct {
		Start   focus.FocusStartCmd   `cmd:"" help:"Start a 25-minute focus session."`
		Status  focus.FocusStatusCmd  `cmd:"" help:"Show the current session's remaining time."`
		Watch   focus.FocusWatchCmd   `cmd:"" help:"Follow the countdown in the terminal."`
		Reset   focus.FocusResetCmd   `cmd:"" help:"Detach from the current session."`
		History focus.FocusHistoryCmd `cmd:"" help:"List completed sessions."`
	} `cmd:"" help:"Run focus sessions."`
}

const version = "0.3.0"

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("tempo"),
		kong.Description("A local-first todo list, habit tracker, and focus timer."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	store := CLI.Store
	if store == "" {
		dir, err := storage.DefaultDataDir()
		if err != nil {
			errors.Fatal(err)
		}
		store = dir
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDirFor(store)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	backend, err := cli.OpenBackend(store)
	if err != nil {
		errors.Fatal(err)
	}

	repos := repo.Open(backend, clock.System())
	defer repos.Close()

	cmdCtx := &cli.Context{Store: repos, Clock: clock.System(), Debug: CLI.Debug}
	errors.Fatal(ctx.Run(cmdCtx))
}

// configDirFor places logs next to a filesystem store, or in the user config
// dir when the store is a remote connection string.
func configDirFor(store string) string {
	if _, err := os.Stat(filepath.Dir(store)); err == nil {
		return filepath.Dir(store)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "tempo")
	}
	return "."
}
