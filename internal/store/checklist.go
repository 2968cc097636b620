package store

import (
	"fmt"
	"time"

	"github.com/blackroad/qualityctl/internal/models"
)

// AddItem inserts a new checklist item and returns its assigned id. The
// created_at and updated_at stamps are set here, not by the caller.
func (db *DB) AddItem(item models.ChecklistItem) (int64, error) {
	if item.Status == "" {
		item.Status = models.StatusPending
	}
	now := formatTime(time.Now())
	res, err := db.conn.Exec(`
		INSERT INTO checklist_items (title, category, severity, status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, item.Title, item.Category, item.Severity, item.Status, item.Notes, now, now)
	if err != nil {
		return 0, fmt.Errorf("store: add checklist item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: checklist item id: %w", err)
	}
	return id, nil
}

// UpdateItemStatus rewrites status, notes, and updated_at for the matching
// item. The boolean reports whether a row was actually affected; a missing
// id is not an error.
func (db *DB) UpdateItemStatus(id int64, status, notes string) (bool, error) {
	res, err := db.conn.Exec(`
		UPDATE checklist_items SET status = ?, notes = ?, updated_at = ? WHERE id = ?
	`, status, notes, formatTime(time.Now()), id)
	if err != nil {
		return false, fmt.Errorf("store: update checklist status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("store: update checklist status: %w", err)
	}
	return n > 0, nil
}

// ListItems returns checklist items newest first, optionally filtered by
// category. The result is never nil.
func (db *DB) ListItems(category string) ([]models.ChecklistItem, error) {
	q := `SELECT id, title, category, severity, status, notes, created_at, updated_at FROM checklist_items`
	var args []any
	if category != "" {
		q += ` WHERE category = ?`
		args = append(args, category)
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := db.conn.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list checklist items: %w", err)
	}
	defer rows.Close()

	items := []models.ChecklistItem{}
	for rows.Next() {
		var it models.ChecklistItem
		var created, updated string
		if err := rows.Scan(&it.ID, &it.Title, &it.Category, &it.Severity, &it.Status, &it.Notes, &created, &updated); err != nil {
			return nil, fmt.Errorf("store: scan checklist item: %w", err)
		}
		it.CreatedAt = parseTime(created)
		it.UpdatedAt = parseTime(updated)
		items = append(items, it)
	}
	return items, rows.Err()
}
