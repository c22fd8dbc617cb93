package cli

import (
	"fmt"
	"strings"

	"github.com/tempo-app/tempo/internal/clock"
	"github.com/tempo-app/tempo/internal/models"
	"github.com/tempo-app/tempo/internal/repo"
	"github.com/tempo-app/tempo/internal/storage"
)

// Context is threaded to every command's Run method.
type Context struct {
	Store *repo.Store
	Clock clock.Clock
	Debug bool
}

// Today returns the current calendar date (YYYY-MM-DD).
func (c *Context) Today() string {
	return c.Clock.Now().Format(models.DateFormat)
}

// OpenBackend picks a storage backend from the --store value: a postgres://
// connection string, a *.db SQLite path, or a directory for the default
// file-per-slot store.
func OpenBackend(store string) (storage.Backend, error) {
	switch {
	case strings.HasPrefix(store, "postgres://"), strings.HasPrefix(store, "postgresql://"):
		return storage.NewPostgresBackend(store)
	case strings.HasSuffix(store, ".db"):
		return storage.NewSQLiteBackend(store)
	default:
		return storage.NewDiskvBackend(store)
	}
}

// MatchOne resolves a user-supplied id, accepting any unique prefix.
func MatchOne[T any](items []T, id func(T) string, query string) (T, error) {
	var zero T
	var matched []T
	for _, item := range items {
		if id(item) == query {
			return item, nil
		}
		if strings.HasPrefix(id(item), query) {
			matched = append(matched, item)
		}
	}
	switch len(matched) {
	case 0:
		return zero, fmt.Errorf("no record matches id %q", query)
	case 1:
		return matched[0], nil
	default:
		return zero, fmt.Errorf("id %q is ambiguous (%d matches)", query, len(matched))
	}
}

// ShortID trims a uuid for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
