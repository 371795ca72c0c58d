package service

import (
	"context"
	"sort"
	"strings"

	"github.com/gofrs/uuid"

	"focusflow/internal/core/domain"
)

func (w *Workspace) ListZones(_ context.Context) ([]domain.Zone, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]domain.Zone, 0, len(w.zones))
	for _, z := range w.zones {
		out = append(out, z)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (w *Workspace) CreateZone(_ context.Context, input domain.CreateZoneInput) (domain.Zone, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	zone := domain.Zone{
		ID:        newID(),
		Name:      strings.TrimSpace(input.Name),
		Color:     input.Color,
		Order:     len(w.zones),
		CreatedAt: w.now(),
	}
	w.zones[zone.ID] = zone
	w.commit()
	return zone, nil
}

func (w *Workspace) UpdateZone(_ context.Context, id uuid.UUID, input domain.UpdateZoneInput) (domain.Zone, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	zone, ok := w.zones[id]
	if !ok {
		return domain.Zone{}, domain.ErrZoneNotFound
	}
	if input.Name != nil {
		zone.Name = strings.TrimSpace(*input.Name)
	}
	if input.Color != nil {
		zone.Color = *input.Color
	}
	w.zones[id] = zone
	w.commit()
	return zone, nil
}

// DeleteZone removes the zone, every task currently scoped to it (matched
// on each task's own zone id, never inferred from an ancestor) and its
// recurring templates, in one atomic mutation.
func (w *Workspace) DeleteZone(_ context.Context, id uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.zones[id]; !ok {
		return domain.ErrZoneNotFound
	}
	delete(w.zones, id)
	for taskID, t := range w.tasks {
		if t.ZoneID == id {
			delete(w.tasks, taskID)
		}
	}
	for tplID, tpl := range w.templates {
		if tpl.ZoneID == id {
			delete(w.templates, tplID)
		}
	}
	w.renumberZones()
	w.commit()
	return nil
}

// ReorderZones rewrites the zone order to follow ids; ids absent from the
// collection are skipped, zones absent from ids keep their relative order
// after the listed ones.
func (w *Workspace) ReorderZones(_ context.Context, ids []uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	rank := make(map[uuid.UUID]int, len(ids))
	next := 0
	for _, id := range ids {
		if _, ok := w.zones[id]; !ok {
			continue
		}
		rank[id] = next
		next++
	}
	for id, zone := range w.zones {
		if r, ok := rank[id]; ok {
			zone.Order = r
		} else {
			zone.Order = next + zone.Order
		}
		w.zones[id] = zone
	}
	w.renumberZones()
	w.commit()
	return nil
}

func (w *Workspace) renumberZones() {
	ordered := make([]domain.Zone, 0, len(w.zones))
	for _, z := range w.zones {
		ordered = append(ordered, z)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Order != ordered[j].Order {
			return ordered[i].Order < ordered[j].Order
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})
	for i, z := range ordered {
		if z.Order != i {
			z.Order = i
			w.zones[z.ID] = z
		}
	}
}
