package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"focusflow/internal/core/domain"
)

func (w *Workspace) ListTemplates(_ context.Context) ([]domain.RecurringTemplate, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]domain.RecurringTemplate, 0, len(w.templates))
	for _, tpl := range w.templates {
		out = append(out, tpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

func (w *Workspace) CreateTemplate(_ context.Context, input domain.CreateTemplateInput) (domain.RecurringTemplate, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.zones[input.ZoneID]; !ok {
		return domain.RecurringTemplate{}, domain.ErrZoneNotFound
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	scope := input.Scope
	if scope == "" {
		scope = domain.ScopeWorkspace
	}
	tpl := domain.RecurringTemplate{
		ID:                  newID(),
		Title:               strings.TrimSpace(input.Title),
		Description:         input.Description,
		ZoneID:              input.ZoneID,
		Priority:            priority,
		IntervalMinutes:     input.IntervalMinutes,
		LastTriggeredAt:     w.now(),
		DeadlineOffsetHours: input.DeadlineOffsetHours,
		IsActive:            true,
		Scope:               scope,
	}
	w.templates[tpl.ID] = tpl
	w.commit()
	return tpl, nil
}

func (w *Workspace) DeleteTemplate(_ context.Context, id uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.templates[id]; !ok {
		return domain.ErrTemplateNotFound
	}
	delete(w.templates, id)
	w.commit()
	return nil
}

func (w *Workspace) SetTemplateActive(_ context.Context, id uuid.UUID, active bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	tpl, ok := w.templates[id]
	if !ok {
		return domain.ErrTemplateNotFound
	}
	tpl.IsActive = active
	w.templates[id] = tpl
	w.commit()
	return nil
}

// RunRecurringCheck materializes one new root task for every active
// template whose interval has elapsed. All due templates are processed in
// a single pass and the derived metrics are recomputed once at the end,
// never once per template. Returns the number of tasks spawned.
func (w *Workspace) RunRecurringCheck(_ context.Context) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	due := make([]domain.RecurringTemplate, 0)
	for _, tpl := range w.templates {
		if tpl.Due(now) {
			due = append(due, tpl)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ID.String() < due[j].ID.String() })

	spawned := 0
	for _, tpl := range due {
		if _, ok := w.zones[tpl.ZoneID]; !ok {
			// Zone deleted out from under the template; skip, keep it
			// from re-firing every tick.
			tpl.LastTriggeredAt = now
			w.templates[tpl.ID] = tpl
			zap.L().Warn("recurring template points at missing zone",
				zap.String("template_id", tpl.ID.String()),
				zap.String("zone_id", tpl.ZoneID.String()))
			continue
		}

		task := domain.Task{
			ID:           newID(),
			ZoneID:       tpl.ZoneID,
			Title:        tpl.Title,
			Description:  annotateGenerated(tpl.Description),
			Priority:     tpl.Priority,
			DeadlineType: domain.DeadlineNone,
			Order:        len(domain.Siblings(w.tasks, tpl.ZoneID, nil)),
			CreatedAt:    now,
		}
		if tpl.DeadlineOffsetHours > 0 {
			deadline := now.Add(time.Duration(tpl.DeadlineOffsetHours) * time.Hour)
			task.Deadline = &deadline
			task.DeadlineType = domain.DeadlineExact
		}
		w.tasks[task.ID] = task

		tpl.LastTriggeredAt = now
		w.templates[tpl.ID] = tpl
		spawned++
	}

	if spawned > 0 || len(due) > 0 {
		w.commit()
	}
	return spawned, nil
}

func annotateGenerated(description string) string {
	const note = "[auto-generated from recurring template]"
	if description == "" {
		return note
	}
	return description + "\n\n" + note
}
