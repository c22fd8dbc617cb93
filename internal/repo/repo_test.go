package repo

import (
	"testing"
	"time"

	"github.com/tempo-app/tempo/internal/clock"
	"github.com/tempo-app/tempo/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *clock.Mock) {
	t.Helper()
	clk := clock.NewMock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	return Open(storage.NewMemoryBackend(), clk), clk
}
