// Package render formats checklist items, defects, and aggregate stats as
// colored columnar text for the terminal.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blackroad/qualityctl/internal/models"
)

// ANSI escape sequences.
const (
	green     = "\033[0;32m"
	red       = "\033[0;31m"
	brightRed = "\033[0;91m"
	yellow    = "\033[1;33m"
	cyan      = "\033[0;36m"
	blue      = "\033[0;34m"
	bold      = "\033[1m"
	reset     = "\033[0m"
)

// severityColor maps severity labels to their display color. Unknown labels
// render uncolored.
func severityColor(severity string) string {
	switch severity {
	case models.SeverityCritical:
		return red
	case models.SeverityHigh:
		return brightRed
	case models.SeverityMedium:
		return yellow
	case models.SeverityLow:
		return green
	}
	return reset
}

// statusColor maps status labels to their display color. The closed color is
// reserved for manually edited rows; no operation writes that status.
func statusColor(status string) string {
	switch status {
	case models.StatusPassed, models.DefectResolved:
		return green
	case models.StatusFailed, models.DefectOpen:
		return red
	case models.DefectClosed:
		return cyan
	case models.StatusPending:
		return yellow
	case models.StatusInProgress:
		return blue
	}
	return reset
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// ChecklistTable renders checklist items as a columnar table with a total
// footer.
func ChecklistTable(items []models.ChecklistItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s%s%-5s %-35s %-15s %-10s %s%s\n", bold, cyan, "ID", "Title", "Category", "Severity", "Status", reset)
	b.WriteString(strings.Repeat("-", 78) + "\n")
	for _, it := range items {
		fmt.Fprintf(&b, "%-5d %-35s %-15s %s%-10s%s %s%s%s\n",
			it.ID, truncate(it.Title, 34), it.Category,
			severityColor(it.Severity), it.Severity, reset,
			statusColor(it.Status), it.Status, reset)
	}
	fmt.Fprintf(&b, "\n%sTotal: %d%s\n\n", cyan, len(items), reset)
	return b.String()
}

// DefectTable renders defects as a columnar table with a total footer.
func DefectTable(defects []models.Defect) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s%s%-5s %-30s %-15s %-10s %-12s %s%s\n", bold, cyan, "ID", "Title", "Component", "Severity", "Status", "Assignee", reset)
	b.WriteString(strings.Repeat("-", 90) + "\n")
	for _, d := range defects {
		fmt.Fprintf(&b, "%-5d %-30s %-15s %s%-10s%s %s%-12s%s %s\n",
			d.ID, truncate(d.Title, 29), d.Component,
			severityColor(d.Severity), d.Severity, reset,
			statusColor(d.Status), d.Status, reset,
			d.Assignee)
	}
	fmt.Fprintf(&b, "\n%sTotal: %d%s\n\n", cyan, len(defects), reset)
	return b.String()
}

// Dashboard renders the aggregate stats: checklist counts by status, open
// defect counts by severity, and the total of open defects. Buckets print in
// sorted key order for stable output.
func Dashboard(stats models.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s%s=== Quality Control Dashboard ===%s\n\n", bold, cyan, reset)

	fmt.Fprintf(&b, "%sChecklist Status:%s\n", bold, reset)
	for _, status := range sortedKeys(stats.Checklist) {
		fmt.Fprintf(&b, "  %s%-14s%s %d\n", statusColor(status), status, reset, stats.Checklist[status])
	}

	fmt.Fprintf(&b, "\n%sOpen Defects by Severity:%s\n", bold, reset)
	for _, severity := range sortedKeys(stats.OpenDefectsBySeverity) {
		fmt.Fprintf(&b, "  %s%-14s%s %d\n", severityColor(severity), severity, reset, stats.OpenDefectsBySeverity[severity])
	}

	fmt.Fprintf(&b, "\n%sTotal open defects: %s%d%s\n\n", bold, red, stats.TotalOpenDefects(), reset)
	return b.String()
}

// AddedChecklist returns the confirmation line for a new checklist item.
func AddedChecklist(id int64, title string) string {
	return fmt.Sprintf("%sAdded checklist item #%d: %s%s", green, id, title, reset)
}

// LoggedDefect returns the confirmation line for a new defect.
func LoggedDefect(id int64, title string) string {
	return fmt.Sprintf("%sLogged defect #%d: %s%s", red, id, title, reset)
}

// Updated returns the confirmation line for a checklist status update.
func Updated(id int64, status string) string {
	return fmt.Sprintf("%sUpdated checklist item #%d to %s%s", green, id, status, reset)
}

// Resolved returns the confirmation line for a resolved defect.
func Resolved(id int64) string {
	return fmt.Sprintf("%sResolved defect #%d%s", green, id, reset)
}

// NotFound returns the warning line for an update or resolve that matched
// no row.
func NotFound(kind string, id int64) string {
	return fmt.Sprintf("%sNo %s with id %d%s", yellow, kind, id, reset)
}

// ExportedTo returns the confirmation line for an export written to a file.
func ExportedTo(path string) string {
	return fmt.Sprintf("%sExported to %s%s", green, path, reset)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
