// Package models defines the domain types for the quality tracker.
package models

import "time"

// Severity labels recognized by the command layer. The store itself does not
// validate severity text; unknown labels are stored and displayed as-is.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Checklist item statuses. Transitions are unconstrained: any status may
// follow any other.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusPassed     = "passed"
	StatusFailed     = "failed"
)

// Defect statuses. Only open and resolved are ever written by the exposed
// operations; closed is recognized for display only (manual data edits).
const (
	DefectOpen     = "open"
	DefectResolved = "resolved"
	DefectClosed   = "closed"
)

// ChecklistItem represents a trackable QA task with a pass/fail-oriented status.
type ChecklistItem struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Severity  string    `json:"severity"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Defect represents a recorded bug with severity, component, and ownership.
type Defect struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Severity    string     `json:"severity"`
	Component   string     `json:"component"`
	Status      string     `json:"status"`
	Assignee    string     `json:"assignee"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
}

// Stats holds grouped counts computed on demand: checklist items by status
// across all rows, and open defects by severity.
type Stats struct {
	Checklist             map[string]int `json:"checklist"`
	OpenDefectsBySeverity map[string]int `json:"open_defects_by_severity"`
}

// TotalOpenDefects sums the open-defect counts across severities.
func (s Stats) TotalOpenDefects() int {
	total := 0
	for _, c := range s.OpenDefectsBySeverity {
		total += c
	}
	return total
}

// ExportDocument is a structured snapshot combining all checklist items, all
// defects, and the aggregate stats at export time.
type ExportDocument struct {
	ChecklistItems []ChecklistItem `json:"checklist_items"`
	Defects        []Defect        `json:"defects"`
	Stats          Stats           `json:"stats"`
	ExportedAt     time.Time       `json:"exported_at"`
}
