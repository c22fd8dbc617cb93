package system

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/tempo-app/tempo/internal/cli"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
	}

	if err := checkCollectionsLoad(ctx); err != nil {
		fmt.Printf("❌ Collections load: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Collections load: OK\n")
	}

	if warnings := checkDataIntegrity(ctx); len(warnings) > 0 {
		fmt.Printf("⚠ Data integrity: WARNING\n")
		for _, w := range warnings {
			fmt.Printf("   %s\n", w)
		}
	} else {
		fmt.Printf("✓ Data integrity: OK\n")
	}

	if err := checkClock(ctx); err != nil {
		fmt.Printf("❌ Clock sanity: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock sanity: OK\n")
	}

	if others, err := otherTempoProcesses(); err == nil && len(others) > 0 {
		fmt.Printf("⚠ Concurrent processes: %d other tempo process(es) running\n", len(others))
		fmt.Printf("   Repository writes are atomic per process; last write wins across processes.\n")
	} else {
		fmt.Printf("✓ Concurrent processes: none\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkStorageReachable(ctx *cli.Context) error {
	_, err := ctx.Store.Backend().Slots()
	return err
}

func checkCollectionsLoad(ctx *cli.Context) error {
	if _, err := ctx.Store.Todos.All(); err != nil {
		return fmt.Errorf("todos: %w", err)
	}
	if _, err := ctx.Store.Habits.All(); err != nil {
		return fmt.Errorf("habits: %w", err)
	}
	if _, err := ctx.Store.Completions.All(); err != nil {
		return fmt.Errorf("completions: %w", err)
	}
	if _, err := ctx.Store.Sessions.All(); err != nil {
		return fmt.Errorf("sessions: %w", err)
	}
	return nil
}

func checkDataIntegrity(ctx *cli.Context) []string {
	var warnings []string

	completions, err := ctx.Store.Completions.All()
	if err == nil {
		seen := make(map[string]bool, len(completions))
		for _, c := range completions {
			key := c.HabitID + "|" + c.Date
			if seen[key] {
				warnings = append(warnings, fmt.Sprintf("duplicate completion for habit %s on %s", cli.ShortID(c.HabitID), c.Date))
			}
			seen[key] = true
		}
	}

	sessions, err := ctx.Store.Sessions.All()
	if err == nil {
		open := 0
		for _, s := range sessions {
			if !s.Completed {
				open++
			}
			if s.Completed && s.EndTime == nil {
				warnings = append(warnings, fmt.Sprintf("completed session %s has no end time", cli.ShortID(s.ID)))
			}
		}
		if open > 1 {
			warnings = append(warnings, fmt.Sprintf("%d incomplete sessions; expected at most one", open))
		}
	}

	return warnings
}

func checkClock(ctx *cli.Context) error {
	now := ctx.Clock.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock reports %s; timers derived from wall-clock timestamps will misbehave", now.Format(time.RFC3339))
	}
	return nil
}

func otherTempoProcesses() ([]ps.Process, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}
	var others []ps.Process
	for _, p := range procs {
		if p.Pid() != os.Getpid() && strings.HasPrefix(p.Executable(), "tempo") {
			others = append(others, p)
		}
	}
	return others, nil
}
