package render

import (
	"strings"
	"testing"
	"time"

	"github.com/blackroad/qualityctl/internal/models"
)

func TestChecklistTable(t *testing.T) {
	items := []models.ChecklistItem{
		{ID: 7, Title: "verify release notes", Category: "docs", Severity: models.SeverityLow, Status: models.StatusPending, CreatedAt: time.Now()},
	}
	out := ChecklistTable(items)

	for _, want := range []string{"7", "verify release notes", "docs", "low", "pending", "Total: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestChecklistTableTruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("x", 60)
	out := ChecklistTable([]models.ChecklistItem{{ID: 1, Title: long}})

	if strings.Contains(out, long) {
		t.Error("title longer than 34 runes must be truncated")
	}
	if !strings.Contains(out, strings.Repeat("x", 34)) {
		t.Error("truncated title prefix missing")
	}
}

func TestDefectTable(t *testing.T) {
	resolved := time.Now()
	defects := []models.Defect{
		{ID: 3, Title: "panic on empty input", Component: "parser", Severity: models.SeverityCritical, Status: models.DefectOpen, Assignee: "sam"},
		{ID: 2, Title: "fixed", Component: "general", Severity: models.SeverityLow, Status: models.DefectResolved, ResolvedAt: &resolved},
	}
	out := DefectTable(defects)

	for _, want := range []string{"panic on empty input", "parser", "critical", "open", "sam", "resolved", "Total: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestDashboard(t *testing.T) {
	stats := models.Stats{
		Checklist:             map[string]int{models.StatusPending: 2, models.StatusPassed: 1},
		OpenDefectsBySeverity: map[string]int{models.SeverityHigh: 2},
	}
	out := Dashboard(stats)

	for _, want := range []string{"Quality Control Dashboard", "pending", "passed", "high", "Total open defects:", "2"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing %q:\n%s", want, out)
		}
	}
}

func TestStatusColorVocabulary(t *testing.T) {
	cases := map[string]string{
		models.StatusPassed:     green,
		models.StatusFailed:     red,
		models.DefectOpen:       red,
		models.DefectResolved:   green,
		models.DefectClosed:     cyan,
		models.StatusPending:    yellow,
		models.StatusInProgress: blue,
		"anything else":         reset,
	}
	for status, want := range cases {
		if got := statusColor(status); got != want {
			t.Errorf("statusColor(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestSeverityColorUnknown(t *testing.T) {
	if got := severityColor("catastrophic"); got != reset {
		t.Errorf("unknown severity must render uncolored, got %q", got)
	}
}
