package store

import (
	"testing"
	"time"

	"github.com/blackroad/qualityctl/internal/models"
)

func defectFixture(title string) models.Defect {
	return models.Defect{
		Title:       title,
		Description: "something broke",
		Severity:    models.SeverityHigh,
		Component:   "general",
	}
}

func TestAddDefectOpensUnresolved(t *testing.T) {
	db := testDB(t)

	id, err := db.AddDefect(defectFixture("crash on start"))
	if err != nil {
		t.Fatalf("AddDefect: %v", err)
	}
	if id == 0 {
		t.Error("expected a nonzero id")
	}

	defects, err := db.ListDefects("")
	if err != nil {
		t.Fatal(err)
	}
	if len(defects) != 1 {
		t.Fatalf("expected 1 defect, got %d", len(defects))
	}
	d := defects[0]
	if d.Status != models.DefectOpen {
		t.Errorf("status = %q, want %q", d.Status, models.DefectOpen)
	}
	if d.ResolvedAt != nil {
		t.Errorf("resolved_at = %v, want nil before resolve", d.ResolvedAt)
	}
}

func TestResolveDefect(t *testing.T) {
	db := testDB(t)

	id, err := db.AddDefect(defectFixture("leak"))
	if err != nil {
		t.Fatal(err)
	}

	found, err := db.ResolveDefect(id)
	if err != nil {
		t.Fatalf("ResolveDefect: %v", err)
	}
	if !found {
		t.Fatal("expected found = true for existing defect")
	}

	defects, _ := db.ListDefects("")
	d := defects[0]
	if d.Status != models.DefectResolved {
		t.Errorf("status = %q, want %q", d.Status, models.DefectResolved)
	}
	if d.ResolvedAt == nil {
		t.Fatal("resolved_at still nil after resolve")
	}

	// Re-resolving succeeds and rewrites the stamp with a newer time.
	first := *d.ResolvedAt
	time.Sleep(2 * time.Millisecond)

	found, err = db.ResolveDefect(id)
	if err != nil {
		t.Fatalf("second ResolveDefect: %v", err)
	}
	if !found {
		t.Error("re-resolve must still report found = true")
	}

	defects, _ = db.ListDefects("")
	if !defects[0].ResolvedAt.After(first) {
		t.Errorf("resolved_at %v not after first stamp %v", defects[0].ResolvedAt, first)
	}
}

func TestResolveDefect_NotFound(t *testing.T) {
	db := testDB(t)

	found, err := db.ResolveDefect(42)
	if err != nil {
		t.Fatalf("ResolveDefect: %v", err)
	}
	if found {
		t.Error("expected found = false for nonexistent defect")
	}
}

func TestListDefectsStatusFilter(t *testing.T) {
	db := testDB(t)

	openID, err := db.AddDefect(defectFixture("still open"))
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(2 * time.Millisecond)
	resolvedID, err := db.AddDefect(defectFixture("fixed already"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.ResolveDefect(resolvedID); err != nil {
		t.Fatal(err)
	}

	open, err := db.ListDefects(models.DefectOpen)
	if err != nil {
		t.Fatal(err)
	}
	if len(open) != 1 || open[0].ID != openID {
		t.Errorf("open defects = %+v, want only id %d", open, openID)
	}

	resolved, err := db.ListDefects(models.DefectResolved)
	if err != nil {
		t.Fatal(err)
	}
	if len(resolved) != 1 || resolved[0].ID != resolvedID {
		t.Errorf("resolved defects = %+v, want only id %d", resolved, resolvedID)
	}

	all, err := db.ListDefects("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 defects, got %d", len(all))
	}
	// Newest first.
	if all[0].ID != resolvedID || all[1].ID != openID {
		t.Errorf("defects out of order: %d, %d", all[0].ID, all[1].ID)
	}
}
