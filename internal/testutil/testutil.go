package testutil

import (
	"database/sql"
	"testing"

	"github.com/sweetshop/sweetshop-api/internal/db"
)

// OpenInMemoryDB opens an in-memory SQLite database with the schema applied.
// Each name is an isolated database; shared cache lets multiple connections
// in one test see the same data. Closed automatically via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()

	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}
