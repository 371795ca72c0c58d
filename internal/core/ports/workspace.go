package ports

import (
	"context"

	"github.com/gofrs/uuid"

	"focusflow/internal/core/domain"
)

type ZoneService interface {
	ListZones(ctx context.Context) ([]domain.Zone, error)
	CreateZone(ctx context.Context, input domain.CreateZoneInput) (domain.Zone, error)
	UpdateZone(ctx context.Context, id uuid.UUID, input domain.UpdateZoneInput) (domain.Zone, error)
	DeleteZone(ctx context.Context, id uuid.UUID) error
	ReorderZones(ctx context.Context, ids []uuid.UUID) error
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
	ToggleTask(ctx context.Context, id uuid.UUID) (domain.Task, error)
	MoveTask(ctx context.Context, id uuid.UUID, input domain.MoveTaskInput) error
	SetCollapsed(ctx context.Context, id uuid.UUID, collapsed bool) error
	SetExpanded(ctx context.Context, id uuid.UUID, expanded bool) error
	AccumulateWorkSeconds(ctx context.Context, id uuid.UUID, seconds int64)
}

type TreeService interface {
	TreeView(ctx context.Context, zoneID, focusID *uuid.UUID) (domain.TreeView, error)
	ResolveReposition(ctx context.Context, draggedID, targetID uuid.UUID, offsetPx int, zoneID, focusID *uuid.UUID) (domain.Reposition, error)
}

type ClipboardService interface {
	CopySubtree(ctx context.Context, id uuid.UUID) (domain.Subtree, error)
	PasteSubtree(ctx context.Context, sub domain.Subtree, zoneID uuid.UUID, parentID *uuid.UUID) (domain.Task, error)
	ExportZone(ctx context.Context, zoneID uuid.UUID) (domain.Snapshot, error)
	ImportSnapshot(ctx context.Context, snapshot domain.Snapshot) error
}

type SchedulerService interface {
	ListTemplates(ctx context.Context) ([]domain.RecurringTemplate, error)
	CreateTemplate(ctx context.Context, input domain.CreateTemplateInput) (domain.RecurringTemplate, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	SetTemplateActive(ctx context.Context, id uuid.UUID, active bool) error
	RunRecurringCheck(ctx context.Context) (int, error)
}

// SnapshotStore is the persistence collaborator: it serializes the whole
// workspace after each mutation and restores it verbatim on load. Saves
// are fire-and-forget from the engine's point of view.
type SnapshotStore interface {
	Save(ctx context.Context, snapshot domain.Snapshot) error
	Load(ctx context.Context) (domain.Snapshot, bool, error)
}
