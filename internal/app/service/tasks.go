package service

import (
	"context"
	"strings"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"focusflow/internal/core/domain"
)

func (w *Workspace) CreateTask(_ context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	zoneID := input.ZoneID
	if input.ParentID != nil {
		parent, ok := w.tasks[*input.ParentID]
		if !ok {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		// A subtree never spans zones.
		zoneID = parent.ZoneID
	}
	if _, ok := w.zones[zoneID]; !ok {
		return domain.Task{}, domain.ErrZoneNotFound
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	deadlineType := input.DeadlineType
	if deadlineType == "" {
		deadlineType = domain.DeadlineNone
	}

	task := domain.Task{
		ID:            newID(),
		ZoneID:        zoneID,
		ParentID:      input.ParentID,
		Title:         strings.TrimSpace(input.Title),
		Description:   input.Description,
		Priority:      priority,
		Deadline:      input.Deadline,
		DeadlineType:  deadlineType,
		Order:         len(domain.Siblings(w.tasks, zoneID, input.ParentID)),
		CreatedAt:     w.now(),
		EstimatedTime: input.EstimatedTime,
	}
	w.tasks[task.ID] = task
	w.commit()
	return task, nil
}

func (w *Workspace) UpdateTask(_ context.Context, id uuid.UUID, input domain.UpdateTaskInput) (domain.Task, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	task, ok := w.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if input.Title != nil {
		task.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.DeadlineSet {
		task.Deadline = input.Deadline
		if input.Deadline == nil {
			task.DeadlineType = domain.DeadlineNone
		}
	}
	if input.DeadlineType != nil {
		task.DeadlineType = *input.DeadlineType
	}
	if input.EstimatedTimeSet {
		task.EstimatedTime = input.EstimatedTime
	}
	if input.PreventAutoComplete != nil {
		task.PreventAutoComplete = *input.PreventAutoComplete
	}
	w.tasks[id] = task
	w.commit()
	return task, nil
}

// DeleteTask removes the task and its whole descendant subtree atomically,
// then renumbers the sibling group it left.
func (w *Workspace) DeleteTask(_ context.Context, id uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	task, ok := w.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	for _, descendant := range domain.Descendants(w.tasks, id) {
		delete(w.tasks, descendant.ID)
	}
	delete(w.tasks, id)
	w.renumberSiblings(task.ZoneID, task.ParentID)
	w.commit()
	return nil
}

func (w *Workspace) ToggleTask(_ context.Context, id uuid.UUID) (domain.Task, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !domain.ToggleCompletion(w.tasks, id, w.now()) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	w.commit()
	return w.tasks[id], nil
}

// MoveTask applies a reposition resolution: reparent (and rezone) the
// task, insert it immediately after the anchor sibling, and renumber both
// affected sibling groups. The moved subtree is rezoned as a whole so
// zone-scoped queries stay consistent.
func (w *Workspace) MoveTask(_ context.Context, id uuid.UUID, input domain.MoveTaskInput) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	task, ok := w.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}

	zoneID := input.ZoneID
	if input.ParentID != nil {
		parent, exists := w.tasks[*input.ParentID]
		if !exists {
			return domain.ErrTaskNotFound
		}
		if *input.ParentID == id {
			return domain.ErrHierarchyCycle
		}
		for _, descendant := range domain.Descendants(w.tasks, id) {
			if descendant.ID == *input.ParentID {
				return domain.ErrHierarchyCycle
			}
		}
		zoneID = parent.ZoneID
	}
	if _, exists := w.zones[zoneID]; !exists {
		return domain.ErrZoneNotFound
	}

	oldZone, oldParent := task.ZoneID, task.ParentID

	if task.ZoneID != zoneID {
		for _, descendant := range domain.Descendants(w.tasks, id) {
			d := w.tasks[descendant.ID]
			d.ZoneID = zoneID
			w.tasks[d.ID] = d
		}
	}
	task.ZoneID = zoneID
	task.ParentID = input.ParentID

	// Rebuild the destination sibling array with the moved task inserted
	// after the anchor (or first when no anchor), then renumber.
	siblings := make([]domain.Task, 0)
	for _, s := range domain.Siblings(w.tasks, zoneID, input.ParentID) {
		if s.ID != id {
			siblings = append(siblings, s)
		}
	}
	insertAt := 0
	if input.AnchorID != nil {
		found := false
		for i, s := range siblings {
			if s.ID == *input.AnchorID {
				insertAt = i + 1
				found = true
				break
			}
		}
		if !found {
			// Stale anchor (sibling removed since resolution): append.
			zap.L().Debug("move anchor not found, appending", zap.String("anchor_id", input.AnchorID.String()))
			insertAt = len(siblings)
		}
	}
	siblings = append(siblings[:insertAt], append([]domain.Task{task}, siblings[insertAt:]...)...)
	for i, s := range siblings {
		s.Order = i
		w.tasks[s.ID] = s
	}

	if oldZone != zoneID || !domain.SameParent(oldParent, input.ParentID) {
		w.renumberSiblings(oldZone, oldParent)
	}
	w.commit()
	return nil
}

func (w *Workspace) SetCollapsed(_ context.Context, id uuid.UUID, collapsed bool) error {
	return w.patchFlag(id, func(t *domain.Task) { t.IsCollapsed = collapsed })
}

func (w *Workspace) SetExpanded(_ context.Context, id uuid.UUID, expanded bool) error {
	return w.patchFlag(id, func(t *domain.Task) { t.Expanded = expanded })
}

func (w *Workspace) patchFlag(id uuid.UUID, apply func(*domain.Task)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	task, ok := w.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	apply(&task)
	w.tasks[id] = task
	w.commit()
	return nil
}

// AccumulateWorkSeconds logs focus time against a task. Called once per
// elapsed second by the timer collaborator; it always reads the currently
// committed record, and an id absent from the collection is a no-op (the
// session target may have been deleted mid-session).
func (w *Workspace) AccumulateWorkSeconds(_ context.Context, id uuid.UUID, seconds int64) {
	if seconds <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	task, ok := w.tasks[id]
	if !ok {
		return
	}
	task.OwnTime += seconds
	w.tasks[id] = task
	w.commit()
}
