package domain

import (
	"time"

	"github.com/gofrs/uuid"
)

// Row is one visible task in a flattened tree view. The effective deadline
// is resolved per node (own deadline, else the nearest ancestor's) so the
// rendering collaborator never walks the tree itself.
type Row struct {
	Task                  Task
	Depth                 int
	EffectiveDeadline     *time.Time
	EffectiveDeadlineType DeadlineType
}

// TreeView bundles what the rendering collaborator consumes in one read:
// the flattened rows, the focus breadcrumb and the derived metric map.
type TreeView struct {
	Rows       []Row
	Breadcrumb []Task
	Aggregates map[uuid.UUID]Aggregates
}

// Flatten renders the forest as a depth-first, pre-order sequence of
// depth-annotated rows.
//
// zoneID restricts the view to one zone (nil = cross-zone view). focusID
// zooms the view: the direct children of the focus task become the root
// set and its ancestor chain (focus task included, root-first) is returned
// separately as the breadcrumb path. A collapsed node hides its subtree
// unless the node lies on the active focus path, which is always expanded
// so a stale collapse flag can never hide the zoomed context. A focus id
// absent from the collection degrades to the unfocused view.
func Flatten(tasks map[uuid.UUID]Task, zoneID *uuid.UUID, focusID *uuid.UUID) ([]Row, []Task) {
	index := ChildIndex(tasks)

	var breadcrumb []Task
	forceExpand := make(map[uuid.UUID]bool)
	var roots []Task

	if focusID != nil {
		if focus, ok := tasks[*focusID]; ok {
			breadcrumb = append(AncestorPath(tasks, focus.ID), focus)
			for _, ancestor := range breadcrumb {
				forceExpand[ancestor.ID] = true
			}
			roots = index[focus.ID]
		} else {
			focusID = nil
		}
	}
	if focusID == nil {
		for _, t := range tasks {
			if !IsRoot(tasks, t) {
				continue
			}
			if zoneID != nil && t.ZoneID != *zoneID {
				continue
			}
			roots = append(roots, t)
		}
		SortSiblings(roots)
	}

	type frame struct {
		task  Task
		depth int
	}

	rows := make([]Row, 0, len(tasks))
	visited := make(map[uuid.UUID]bool)
	var stack []frame
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{task: roots[i]})
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[top.task.ID] {
			continue
		}
		visited[top.task.ID] = true
		// Zone scope is checked per node, never assumed from an ancestor.
		if zoneID != nil && top.task.ZoneID != *zoneID {
			continue
		}
		deadline, deadlineType := InheritedDeadline(tasks, top.task.ID)
		rows = append(rows, Row{
			Task:                  top.task,
			Depth:                 top.depth,
			EffectiveDeadline:     deadline,
			EffectiveDeadlineType: deadlineType,
		})

		if top.task.IsCollapsed && !forceExpand[top.task.ID] {
			continue
		}
		kids := index[top.task.ID]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{task: kids[i], depth: top.depth + 1})
		}
	}
	return rows, breadcrumb
}
