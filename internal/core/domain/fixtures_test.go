package domain_test

import (
	"time"

	"github.com/gofrs/uuid"

	"focusflow/internal/core/domain"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// forest builds task collections for tests with sequential creation times
// so sibling ordering is deterministic without touching Order.
type forest struct {
	zone  uuid.UUID
	tasks map[uuid.UUID]domain.Task
	seq   int
}

func newForest() *forest {
	return &forest{zone: newID(), tasks: make(map[uuid.UUID]domain.Task)}
}

func (f *forest) add(title string, parentID *uuid.UUID, mutate ...func(*domain.Task)) domain.Task {
	order := 0
	for _, t := range f.tasks {
		if domain.SameParent(t.ParentID, parentID) {
			order++
		}
	}
	task := domain.Task{
		ID:           newID(),
		ZoneID:       f.zone,
		ParentID:     parentID,
		Title:        title,
		Priority:     domain.PriorityMedium,
		DeadlineType: domain.DeadlineNone,
		Order:        order,
		CreatedAt:    baseTime.Add(time.Duration(f.seq) * time.Second),
	}
	f.seq++
	for _, m := range mutate {
		m(&task)
	}
	f.tasks[task.ID] = task
	return task
}

func ptrID(id uuid.UUID) *uuid.UUID {
	return &id
}

func ptrInt(v int) *int {
	return &v
}
