package domain

import (
	"fmt"

	"github.com/gofrs/uuid"
)

// Snapshot is the full serializable workspace state handed to the
// persistence collaborator. Derived metrics are not part of it; they are
// recomputable from OwnTime and the explicit estimates.
type Snapshot struct {
	Zones     []Zone              `json:"zones"`
	Tasks     []Task              `json:"tasks"`
	Templates []RecurringTemplate `json:"templates,omitempty"`
}

// Validate checks an externally supplied snapshot structurally before it
// is allowed into the engine. Violations wrap ErrInvalidSnapshot; nothing
// here panics, so one malformed payload can never abort a batch import.
func (s Snapshot) Validate() error {
	zoneIDs := make(map[uuid.UUID]bool, len(s.Zones))
	for _, z := range s.Zones {
		if z.ID == uuid.Nil {
			return fmt.Errorf("%w: zone with empty id", ErrInvalidSnapshot)
		}
		if zoneIDs[z.ID] {
			return fmt.Errorf("%w: duplicate zone id %s", ErrInvalidSnapshot, z.ID)
		}
		zoneIDs[z.ID] = true
	}

	taskIDs := make(map[uuid.UUID]bool, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.ID == uuid.Nil {
			return fmt.Errorf("%w: task with empty id", ErrInvalidSnapshot)
		}
		if taskIDs[t.ID] {
			return fmt.Errorf("%w: duplicate task id %s", ErrInvalidSnapshot, t.ID)
		}
		taskIDs[t.ID] = true
		if !zoneIDs[t.ZoneID] {
			return fmt.Errorf("%w: task %s references unknown zone %s", ErrInvalidSnapshot, t.ID, t.ZoneID)
		}
		if t.ParentID != nil && *t.ParentID == t.ID {
			return fmt.Errorf("%w: task %s is its own parent", ErrInvalidSnapshot, t.ID)
		}
	}

	templateIDs := make(map[uuid.UUID]bool, len(s.Templates))
	for _, tpl := range s.Templates {
		if tpl.ID == uuid.Nil {
			return fmt.Errorf("%w: template with empty id", ErrInvalidSnapshot)
		}
		if templateIDs[tpl.ID] {
			return fmt.Errorf("%w: duplicate template id %s", ErrInvalidSnapshot, tpl.ID)
		}
		templateIDs[tpl.ID] = true
		if tpl.IntervalMinutes < 0 {
			return fmt.Errorf("%w: template %s has negative interval", ErrInvalidSnapshot, tpl.ID)
		}
		if !zoneIDs[tpl.ZoneID] {
			return fmt.Errorf("%w: template %s references unknown zone %s", ErrInvalidSnapshot, tpl.ID, tpl.ZoneID)
		}
	}
	return nil
}
