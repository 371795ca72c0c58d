package domain

import (
	"time"

	"github.com/gofrs/uuid"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type DeadlineType string

const (
	DeadlineNone     DeadlineType = "none"
	DeadlineExact    DeadlineType = "exact"
	DeadlineToday    DeadlineType = "today"
	DeadlineTomorrow DeadlineType = "tomorrow"
	DeadlineWeek     DeadlineType = "week"
)

// Task is a node in the workspace forest. Derived metrics (total work time,
// implicit estimated time) are intentionally not stored on the record; they
// are recomputed by ComputeAggregates after every mutation.
type Task struct {
	ID                  uuid.UUID
	ZoneID              uuid.UUID
	ParentID            *uuid.UUID
	Title               string
	Description         string
	Completed           bool
	CompletedAt         *time.Time
	Priority            Priority
	Deadline            *time.Time
	DeadlineType        DeadlineType
	Order               int
	CreatedAt           time.Time
	OwnTime             int64 // seconds of focus time logged directly
	EstimatedTime       *int  // explicit estimate in minutes, nil = derive from children
	IsCollapsed         bool
	Expanded            bool
	PreventAutoComplete bool
}

type CreateTaskInput struct {
	ZoneID        uuid.UUID
	ParentID      *uuid.UUID
	Title         string
	Description   string
	Priority      Priority
	Deadline      *time.Time
	DeadlineType  DeadlineType
	EstimatedTime *int
}

// UpdateTaskInput carries a partial update. nil pointer means "no change";
// the matching Set flag distinguishes "clear" from "absent" for nullable
// fields.
type UpdateTaskInput struct {
	Title               *string
	Description         *string
	Priority            *Priority
	Deadline            *time.Time
	DeadlineSet         bool
	DeadlineType        *DeadlineType
	EstimatedTime       *int
	EstimatedTimeSet    bool
	PreventAutoComplete *bool
}

// MoveTaskInput is the mutation produced from a reposition resolution:
// the moved task becomes a child of ParentID (nil = root of ZoneID),
// inserted immediately after AnchorID (nil = first sibling).
type MoveTaskInput struct {
	ZoneID   uuid.UUID
	ParentID *uuid.UUID
	AnchorID *uuid.UUID
}
