package store

import (
	"path/filepath"
	"testing"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qc-test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM checklist_items`).Scan(&count); err != nil {
		t.Fatalf("checklist_items table missing: %v", err)
	}
	if err := db.conn.QueryRow(`SELECT count(*) FROM defects`).Scan(&count); err != nil {
		t.Fatalf("defects table missing: %v", err)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qc-test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if _, err := db.AddItem(itemFixture("keep me")); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	db.Close()

	// Reopening must not fail or lose data.
	db, err = Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer db.Close()

	items, err := db.ListItems("")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 1 || items[0].Title != "keep me" {
		t.Errorf("items after reopen = %+v, want the one inserted row", items)
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dirs", "qc.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open with missing parents: %v", err)
	}
	db.Close()
}
