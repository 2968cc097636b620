// Package qcservice coordinates store operations for the command layer and
// assembles export documents.
package qcservice

import (
	"context"
	"time"

	"github.com/blackroad/qualityctl/internal/apperr"
	"github.com/blackroad/qualityctl/internal/models"
	"github.com/blackroad/qualityctl/internal/store"
)

// Service wraps the persistence layer. Each method performs a single
// synchronous store operation; export performs several sequential reads.
type Service struct {
	db *store.DB
}

// NewService creates a new Service over the given store.
func NewService(db *store.DB) *Service {
	return &Service{db: db}
}

// AddChecklistItem inserts a checklist item, applying the documented
// defaults for unset fields, and returns the assigned id.
func (s *Service) AddChecklistItem(_ context.Context, item models.ChecklistItem) (int64, error) {
	if item.Category == "" {
		item.Category = "general"
	}
	if item.Severity == "" {
		item.Severity = models.SeverityMedium
	}
	return s.db.AddItem(item)
}

// AddDefect inserts an open defect, applying the documented defaults, and
// returns the assigned id.
func (s *Service) AddDefect(_ context.Context, d models.Defect) (int64, error) {
	if d.Component == "" {
		d.Component = "general"
	}
	if d.Severity == "" {
		d.Severity = models.SeverityMedium
	}
	return s.db.AddDefect(d)
}

// UpdateChecklistStatus rewrites status and notes for the matching item.
// Returns apperr.ErrNotFound when no row matches the id.
func (s *Service) UpdateChecklistStatus(_ context.Context, id int64, status, notes string) error {
	found, err := s.db.UpdateItemStatus(id, status, notes)
	if err != nil {
		return err
	}
	if !found {
		return apperr.ErrNotFound
	}
	return nil
}

// ResolveDefect marks the matching defect resolved. Returns
// apperr.ErrNotFound when no row matches the id.
func (s *Service) ResolveDefect(_ context.Context, id int64) error {
	found, err := s.db.ResolveDefect(id)
	if err != nil {
		return err
	}
	if !found {
		return apperr.ErrNotFound
	}
	return nil
}

// ListChecklist returns checklist items newest first, optionally filtered
// by category.
func (s *Service) ListChecklist(_ context.Context, category string) ([]models.ChecklistItem, error) {
	return s.db.ListItems(category)
}

// ListDefects returns defects newest first, optionally filtered by status.
func (s *Service) ListDefects(_ context.Context, status string) ([]models.Defect, error) {
	return s.db.ListDefects(status)
}

// Stats computes the aggregate dashboard counts.
func (s *Service) Stats(_ context.Context) (models.Stats, error) {
	return s.db.Stats()
}

// Export snapshots all checklist items, all defects, and the current stats
// into one timestamped document. Any failed sub-read fails the whole export.
func (s *Service) Export(ctx context.Context) (*models.ExportDocument, error) {
	items, err := s.ListChecklist(ctx, "")
	if err != nil {
		return nil, err
	}
	defects, err := s.ListDefects(ctx, "")
	if err != nil {
		return nil, err
	}
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ExportDocument{
		ChecklistItems: items,
		Defects:        defects,
		Stats:          stats,
		ExportedAt:     time.Now(),
	}, nil
}
