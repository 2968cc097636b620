// Package testutil provides shared test helpers for setting up isolated
// databases.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/blackroad/qualityctl/internal/store"
)

// TestDB creates a temporary SQLite database that is automatically cleaned up.
func TestDB(t *testing.T) *store.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quality_control.db")

	db, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
