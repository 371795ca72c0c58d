package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"

	"focusflow/internal/core/domain"
)

func (w *Workspace) CopySubtree(_ context.Context, id uuid.UUID) (domain.Subtree, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	sub, ok := domain.ExtractSubtree(w.tasks, id)
	if !ok {
		return domain.Subtree{}, domain.ErrTaskNotFound
	}
	return sub, nil
}

// PasteSubtree inserts a freshly-id'd copy of the supplied subtree under
// the destination parent (nil = zone root). Source ids are never reused.
func (w *Workspace) PasteSubtree(_ context.Context, sub domain.Subtree, zoneID uuid.UUID, parentID *uuid.UUID) (domain.Task, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if sub.Root.ID == uuid.Nil {
		return domain.Task{}, fmt.Errorf("%w: subtree root has no id", domain.ErrInvalidSnapshot)
	}
	if parentID != nil {
		parent, ok := w.tasks[*parentID]
		if !ok {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		zoneID = parent.ZoneID
	}
	if _, ok := w.zones[zoneID]; !ok {
		return domain.Task{}, domain.ErrZoneNotFound
	}

	clones := domain.CloneSubtree(sub, zoneID, parentID, w.now())
	root := clones[0]
	root.Order = len(domain.Siblings(w.tasks, zoneID, parentID))
	clones[0] = root
	for _, t := range clones {
		w.tasks[t.ID] = t
	}
	w.commit()
	return clones[0], nil
}

// ExportZone serializes one zone with its tasks and templates, for history
// archiving and workspace export collaborators.
func (w *Workspace) ExportZone(_ context.Context, zoneID uuid.UUID) (domain.Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	zone, ok := w.zones[zoneID]
	if !ok {
		return domain.Snapshot{}, domain.ErrZoneNotFound
	}
	out := domain.Snapshot{Zones: []domain.Zone{zone}}
	for _, t := range w.tasks {
		if t.ZoneID == zoneID {
			out.Tasks = append(out.Tasks, t)
		}
	}
	for _, tpl := range w.templates {
		if tpl.ZoneID == zoneID {
			out.Templates = append(out.Templates, tpl)
		}
	}
	return out, nil
}

// ImportSnapshot replaces the whole workspace with a validated external
// snapshot. A malformed payload is rejected as a structured error before
// any state changes.
func (w *Workspace) ImportSnapshot(_ context.Context, snapshot domain.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.install(snapshot)
	w.commit()
	return nil
}

// ExportSnapshot returns the full current workspace state.
func (w *Workspace) ExportSnapshot(_ context.Context) domain.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}
