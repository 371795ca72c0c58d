package domain

import (
	"time"

	"github.com/gofrs/uuid"
)

type TemplateScope string

const (
	ScopeGlobal    TemplateScope = "global"
	ScopeWorkspace TemplateScope = "workspace"
)

// RecurringTemplate materializes a new root task in its zone every time
// IntervalMinutes elapse since LastTriggeredAt.
type RecurringTemplate struct {
	ID                  uuid.UUID
	Title               string
	Description         string
	ZoneID              uuid.UUID
	Priority            Priority
	IntervalMinutes     int
	LastTriggeredAt     time.Time
	DeadlineOffsetHours int
	IsActive            bool
	Scope               TemplateScope
}

type CreateTemplateInput struct {
	Title               string
	Description         string
	ZoneID              uuid.UUID
	Priority            Priority
	IntervalMinutes     int
	DeadlineOffsetHours int
	Scope               TemplateScope
}

// Due reports whether the template's interval has elapsed at now.
func (t RecurringTemplate) Due(now time.Time) bool {
	if !t.IsActive || t.IntervalMinutes <= 0 {
		return false
	}
	return now.Sub(t.LastTriggeredAt) >= time.Duration(t.IntervalMinutes)*time.Minute
}
