package domain

import (
	"time"

	"github.com/gofrs/uuid"
)

// ToggleCompletion flips the completion state of one task and propagates
// the effect through the tree, mutating the collection in place. Returns
// false when the id is not present (defensive no-op).
//
// Downward, every descendant is forced to the toggled value regardless of
// its own state. Upward, each ancestor is inferred from its direct
// children; an ancestor with PreventAutoComplete keeps its manual state and
// ends the climb — a pinned ancestor is a deliberate boundary, so automatic
// inference never reaches past it.
func ToggleCompletion(tasks map[uuid.UUID]Task, id uuid.UUID, now time.Time) bool {
	task, ok := tasks[id]
	if !ok {
		return false
	}

	completed := !task.Completed
	setCompleted(tasks, id, completed, now)

	// Downward cascade, worklist instead of recursion. Descendants is
	// already cycle-safe.
	for _, descendant := range Descendants(tasks, id) {
		setCompleted(tasks, descendant.ID, completed, now)
	}

	// Upward cascade.
	index := ChildIndex(tasks)
	visited := map[uuid.UUID]bool{id: true}
	current := task
	for current.ParentID != nil {
		parent, exists := tasks[*current.ParentID]
		if !exists || visited[parent.ID] {
			break
		}
		visited[parent.ID] = true
		if parent.PreventAutoComplete {
			break
		}

		allDone := true
		for _, child := range index[parent.ID] {
			state := tasks[child.ID]
			if !state.Completed {
				allDone = false
				break
			}
		}
		if parent.Completed == allDone {
			break
		}
		setCompleted(tasks, parent.ID, allDone, now)
		current = tasks[parent.ID]
	}
	return true
}

func setCompleted(tasks map[uuid.UUID]Task, id uuid.UUID, completed bool, now time.Time) {
	task := tasks[id]
	task.Completed = completed
	if completed {
		at := now
		task.CompletedAt = &at
	} else {
		task.CompletedAt = nil
	}
	tasks[id] = task
}
