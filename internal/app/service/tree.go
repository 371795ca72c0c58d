package service

import (
	"context"

	"github.com/gofrs/uuid"

	"focusflow/internal/core/domain"
)

// TreeView renders one consistent read of the forest: flattened rows for
// the zone (nil = all zones), the focus breadcrumb, and the current
// derived metric map. Callers must treat the aggregate map as read-only;
// it is replaced, never mutated, on commit.
func (w *Workspace) TreeView(_ context.Context, zoneID, focusID *uuid.UUID) (domain.TreeView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if zoneID != nil {
		if _, ok := w.zones[*zoneID]; !ok {
			return domain.TreeView{}, domain.ErrZoneNotFound
		}
	}
	rows, breadcrumb := domain.Flatten(w.tasks, zoneID, focusID)
	return domain.TreeView{Rows: rows, Breadcrumb: breadcrumb, Aggregates: w.aggregates}, nil
}

// ResolveReposition computes where a dragged task would land. It consumes
// one consistent flatten snapshot per call; drags are single-flight, so no
// merging of concurrent gestures is attempted.
func (w *Workspace) ResolveReposition(_ context.Context, draggedID, targetID uuid.UUID, offsetPx int, zoneID, focusID *uuid.UUID) (domain.Reposition, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	rows, _ := domain.Flatten(w.tasks, zoneID, focusID)
	var focusRootID *uuid.UUID
	if focusID != nil {
		if _, ok := w.tasks[*focusID]; ok {
			focusRootID = focusID
		}
	}
	return domain.ResolveReposition(rows, draggedID, targetID, offsetPx, focusRootID)
}
