package system

import (
	"fmt"

	"github.com/tempo-app/tempo/internal/cli"
	"github.com/tempo-app/tempo/internal/storage"
)

type InitCmd struct{}

// Run writes empty collections for every slot so the store location is
// created and verified up front. Running against an existing store is
// harmless: only slots that have never been written are touched.
func (c *InitCmd) Run(ctx *cli.Context) error {
	backend := ctx.Store.Backend()

	existing, err := backend.Slots()
	if err != nil {
		return fmt.Errorf("storage not reachable: %w", err)
	}
	present := make(map[string]bool, len(existing))
	for _, slot := range existing {
		present[slot] = true
	}

	for _, slot := range []string{
		storage.SlotTodos, storage.SlotHabits, storage.SlotCompletions, storage.SlotSessions,
	} {
		if present[slot] {
			continue
		}
		col := storage.NewCollection[struct{}](backend, slot)
		if err := col.Save(nil); err != nil {
			return err
		}
	}

	fmt.Println("Initialized tempo storage.")
	return nil
}
