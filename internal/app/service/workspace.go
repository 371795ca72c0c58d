package service

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"focusflow/internal/core/domain"
	"focusflow/internal/core/ports"
)

// Workspace is the canonical in-memory task store. Every mutation runs
// synchronously under one mutex, recomputes the derived metric map, pushes
// a snapshot to the persistence collaborator without blocking, and fires
// the change notification. No mutation is ever partially visible.
type Workspace struct {
	mu         sync.Mutex
	zones      map[uuid.UUID]domain.Zone
	tasks      map[uuid.UUID]domain.Task
	templates  map[uuid.UUID]domain.RecurringTemplate
	aggregates map[uuid.UUID]domain.Aggregates

	store    ports.SnapshotStore
	onChange func()
	now      func() time.Time
}

type Option func(*Workspace)

// WithClock overrides the time source, mainly for tests and the recurring
// scheduler.
func WithClock(now func() time.Time) Option {
	return func(w *Workspace) { w.now = now }
}

// WithChangeListener registers the callback fired after every committed
// mutation. Replaces the ambient global-store notification of the original
// design with an explicit subscription.
func WithChangeListener(fn func()) Option {
	return func(w *Workspace) { w.onChange = fn }
}

// NewWorkspace builds an empty workspace. store may be nil when no
// persistence collaborator is attached (tests, dry runs).
func NewWorkspace(store ports.SnapshotStore, opts ...Option) *Workspace {
	w := &Workspace{
		zones:      make(map[uuid.UUID]domain.Zone),
		tasks:      make(map[uuid.UUID]domain.Task),
		templates:  make(map[uuid.UUID]domain.RecurringTemplate),
		aggregates: make(map[uuid.UUID]domain.Aggregates),
		store:      store,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

var (
	_ ports.ZoneService      = (*Workspace)(nil)
	_ ports.TaskService      = (*Workspace)(nil)
	_ ports.TreeService      = (*Workspace)(nil)
	_ ports.ClipboardService = (*Workspace)(nil)
	_ ports.SchedulerService = (*Workspace)(nil)
)

// OnChange replaces the change listener. The callback runs synchronously
// at the end of every committed mutation, while the lock is still held, so
// it must not call back into the workspace.
func (w *Workspace) OnChange(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// LoadFromStore restores the last persisted snapshot, if any. Called once
// at boot before the workspace is shared.
func (w *Workspace) LoadFromStore(ctx context.Context) error {
	if w.store == nil {
		return nil
	}
	snapshot, found, err := w.store.Load(ctx)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if err := snapshot.Validate(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.install(snapshot)
	w.aggregates = domain.ComputeAggregates(w.tasks)
	return nil
}

func (w *Workspace) install(snapshot domain.Snapshot) {
	w.zones = make(map[uuid.UUID]domain.Zone, len(snapshot.Zones))
	for _, z := range snapshot.Zones {
		w.zones[z.ID] = z
	}
	w.tasks = make(map[uuid.UUID]domain.Task, len(snapshot.Tasks))
	for _, t := range snapshot.Tasks {
		w.tasks[t.ID] = t
	}
	w.templates = make(map[uuid.UUID]domain.RecurringTemplate, len(snapshot.Templates))
	for _, tpl := range snapshot.Templates {
		w.templates[tpl.ID] = tpl
	}
}

// commit finalizes a mutation while the lock is held: derived metrics are
// recomputed from scratch (stale cached values are a correctness bug, not
// an optimization), the snapshot is persisted fire-and-forget, and the
// change listener runs.
func (w *Workspace) commit() {
	w.aggregates = domain.ComputeAggregates(w.tasks)

	if w.store != nil {
		snapshot := w.snapshotLocked()
		go func() {
			if err := w.store.Save(context.Background(), snapshot); err != nil {
				zap.L().Warn("snapshot save failed", zap.Error(err))
			}
		}()
	}
	if w.onChange != nil {
		w.onChange()
	}
}

func (w *Workspace) snapshotLocked() domain.Snapshot {
	snapshot := domain.Snapshot{
		Zones:     make([]domain.Zone, 0, len(w.zones)),
		Tasks:     make([]domain.Task, 0, len(w.tasks)),
		Templates: make([]domain.RecurringTemplate, 0, len(w.templates)),
	}
	for _, z := range w.zones {
		snapshot.Zones = append(snapshot.Zones, z)
	}
	for _, t := range w.tasks {
		snapshot.Tasks = append(snapshot.Tasks, t)
	}
	for _, tpl := range w.templates {
		snapshot.Templates = append(snapshot.Templates, tpl)
	}
	return snapshot
}

// renumberSiblings rewrites the Order of every task sharing the
// (zoneID, parentID) group to its array index. Full renumbering on every
// structural change keeps sibling sequences contiguous from 0 with no
// duplicates.
func (w *Workspace) renumberSiblings(zoneID uuid.UUID, parentID *uuid.UUID) {
	for i, sibling := range domain.Siblings(w.tasks, zoneID, parentID) {
		if sibling.Order != i {
			sibling.Order = i
			w.tasks[sibling.ID] = sibling
		}
	}
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}
