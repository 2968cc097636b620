package store

import (
	"fmt"

	"github.com/blackroad/qualityctl/internal/models"
)

// Stats computes grouped counts: checklist items by status across all rows,
// and open defects by severity. Unrecognized status or severity text simply
// produces its own bucket.
func (db *DB) Stats() (models.Stats, error) {
	stats := models.Stats{
		Checklist:             map[string]int{},
		OpenDefectsBySeverity: map[string]int{},
	}

	rows, err := db.conn.Query(`SELECT status, COUNT(*) FROM checklist_items GROUP BY status`)
	if err != nil {
		return stats, fmt.Errorf("store: checklist stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return stats, fmt.Errorf("store: scan checklist stats: %w", err)
		}
		stats.Checklist[status] = count
	}
	if err := rows.Err(); err != nil {
		return stats, err
	}

	rows, err = db.conn.Query(`SELECT severity, COUNT(*) FROM defects WHERE status = ? GROUP BY severity`, models.DefectOpen)
	if err != nil {
		return stats, fmt.Errorf("store: defect stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var severity string
		var count int
		if err := rows.Scan(&severity, &count); err != nil {
			return stats, fmt.Errorf("store: scan defect stats: %w", err)
		}
		stats.OpenDefectsBySeverity[severity] = count
	}
	return stats, rows.Err()
}
