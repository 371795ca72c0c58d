package domain

import (
	"math"

	"github.com/gofrs/uuid"
)

// IndentWidth is the horizontal pixel distance corresponding to one
// nesting level while dragging.
const IndentWidth = 24

// Reposition is the outcome of resolving a drag gesture: the nesting depth
// the dragged task lands at, its new parent (nil = root of the focus
// context, or absolute root), the sibling it is inserted immediately after
// (nil = first sibling), and the zone it lands in.
//
// The anchor is a sibling id rather than a numeric index on purpose:
// indices shift under any concurrent insertion or removal in the same
// render pass, while the anchor stays valid until that exact sibling is
// removed.
type Reposition struct {
	NewDepth    int
	NewParentID *uuid.UUID
	AnchorID    *uuid.UUID
	ZoneID      uuid.UUID
}

// ResolveReposition projects a drop onto the flattened list: rows is the
// consistent snapshot the gesture operates on (dragged row still present),
// targetID the row under the pointer, offsetPx the signed horizontal drag
// distance (positive = indent intent).
func ResolveReposition(rows []Row, draggedID, targetID uuid.UUID, offsetPx int, focusRootID *uuid.UUID) (Reposition, error) {
	dragIdx, targetIdx := -1, -1
	for i, row := range rows {
		if row.Task.ID == draggedID {
			dragIdx = i
		}
		if row.Task.ID == targetID {
			targetIdx = i
		}
	}
	if dragIdx < 0 || targetIdx < 0 {
		return Reposition{}, ErrTaskNotFound
	}

	// Simulate the list with the dragged row already sitting at the drop
	// position. This makes "previous"/"next" independent of drag
	// direction: the row above the drop slot is always moved[targetIdx-1].
	moved := arrayMove(rows, dragIdx, targetIdx)

	var prev, next *Row
	if targetIdx > 0 {
		prev = &moved[targetIdx-1]
	}
	if targetIdx+1 < len(moved) {
		next = &moved[targetIdx+1]
	}

	depth := rows[dragIdx].Depth + int(math.Round(float64(offsetPx)/IndentWidth))
	maxDepth := 0
	if prev != nil {
		maxDepth = prev.Depth + 1
	}
	minDepth := 0
	if next != nil {
		minDepth = next.Depth
	}
	if depth > maxDepth {
		depth = maxDepth
	}
	if depth < minDepth {
		depth = minDepth
	}

	// Parent: the previous row when we nest directly under it, otherwise
	// the nearest preceding row one level shallower.
	var parentID *uuid.UUID
	var parentRow *Row
	switch {
	case depth == 0:
		parentID = focusRootID
	case prev != nil && depth == prev.Depth+1:
		parentID, parentRow = idPtr(prev.Task.ID), prev
	default:
		for i := targetIdx - 1; i >= 0; i-- {
			if moved[i].Depth == depth-1 {
				parentID, parentRow = idPtr(moved[i].Task.ID), &moved[i]
				break
			}
		}
		if parentID == nil {
			depth = 0
			parentID = focusRootID
		}
	}

	zoneID := moved[targetIdx].Task.ZoneID
	if parentRow != nil {
		zoneID = parentRow.Task.ZoneID
	} else if prev != nil {
		zoneID = prev.Task.ZoneID
	} else if next != nil {
		zoneID = next.Task.ZoneID
	}

	// Anchor: nearest preceding row in the dragged-removed list that will
	// share the resolved parent. Rows below targetIdx are unaffected by
	// the removal, so the prefix of moved is exactly that list.
	var anchorID *uuid.UUID
	for i := targetIdx - 1; i >= 0; i-- {
		row := moved[i]
		if row.Task.ZoneID != zoneID {
			continue
		}
		if SameParent(row.Task.ParentID, parentID) {
			anchorID = idPtr(row.Task.ID)
			break
		}
	}

	return Reposition{NewDepth: depth, NewParentID: parentID, AnchorID: anchorID, ZoneID: zoneID}, nil
}

func arrayMove(rows []Row, from, to int) []Row {
	out := make([]Row, 0, len(rows))
	out = append(out, rows[:from]...)
	out = append(out, rows[from+1:]...)
	moved := rows[from]
	out = append(out[:to], append([]Row{moved}, out[to:]...)...)
	return out
}

func idPtr(id uuid.UUID) *uuid.UUID {
	v := id
	return &v
}
