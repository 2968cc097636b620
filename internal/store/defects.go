package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/blackroad/qualityctl/internal/models"
)

// AddDefect inserts a new defect and returns its assigned id. New defects
// are always open with a null resolved_at.
func (db *DB) AddDefect(d models.Defect) (int64, error) {
	if d.Status == "" {
		d.Status = models.DefectOpen
	}
	res, err := db.conn.Exec(`
		INSERT INTO defects (title, description, severity, component, status, assignee, created_at, resolved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NULL)
	`, d.Title, d.Description, d.Severity, d.Component, d.Status, d.Assignee, formatTime(time.Now()))
	if err != nil {
		return 0, fmt.Errorf("store: add defect: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: defect id: %w", err)
	}
	return id, nil
}

// ResolveDefect marks the matching defect resolved and stamps resolved_at.
// Re-resolving simply rewrites the stamp. The boolean reports whether a row
// existed.
func (db *DB) ResolveDefect(id int64) (bool, error) {
	res, err := db.conn.Exec(`
		UPDATE defects SET status = ?, resolved_at = ? WHERE id = ?
	`, models.DefectResolved, formatTime(time.Now()), id)
	if err != nil {
		return false, fmt.Errorf("store: resolve defect: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("store: resolve defect: %w", err)
	}
	return n > 0, nil
}

// ListDefects returns defects newest first, optionally filtered by exact
// status match. The result is never nil.
func (db *DB) ListDefects(status string) ([]models.Defect, error) {
	q := `SELECT id, title, description, severity, component, status, assignee, created_at, resolved_at FROM defects`
	var args []any
	if status != "" {
		q += ` WHERE status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := db.conn.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list defects: %w", err)
	}
	defer rows.Close()

	defects := []models.Defect{}
	for rows.Next() {
		var d models.Defect
		var created string
		var resolved sql.NullString
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.Severity, &d.Component, &d.Status, &d.Assignee, &created, &resolved); err != nil {
			return nil, fmt.Errorf("store: scan defect: %w", err)
		}
		d.CreatedAt = parseTime(created)
		if resolved.Valid {
			t := parseTime(resolved.String)
			d.ResolvedAt = &t
		}
		defects = append(defects, d)
	}
	return defects, rows.Err()
}
