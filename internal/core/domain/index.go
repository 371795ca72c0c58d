package domain

import (
	"sort"
	"time"

	"github.com/gofrs/uuid"
)

// ChildIndex maps every parent id to its direct children, sorted by Order.
// Children whose parent id is absent from the collection are not indexed
// under that dangling id; IsRoot surfaces them as roots instead so they are
// never silently dropped.
func ChildIndex(tasks map[uuid.UUID]Task) map[uuid.UUID][]Task {
	index := make(map[uuid.UUID][]Task)
	for _, t := range tasks {
		if t.ParentID == nil {
			continue
		}
		if _, ok := tasks[*t.ParentID]; !ok {
			continue
		}
		index[*t.ParentID] = append(index[*t.ParentID], t)
	}
	for id := range index {
		SortSiblings(index[id])
	}
	return index
}

// IsRoot reports whether t starts a tree: no parent, or a dangling parent
// reference left behind by a corrupted snapshot.
func IsRoot(tasks map[uuid.UUID]Task, t Task) bool {
	if t.ParentID == nil {
		return true
	}
	_, ok := tasks[*t.ParentID]
	return !ok
}

// Roots returns the tree roots of the collection, sorted by Order with
// CreatedAt then id as tie-breakers (Order is only unique per zone).
func Roots(tasks map[uuid.UUID]Task) []Task {
	var roots []Task
	for _, t := range tasks {
		if IsRoot(tasks, t) {
			roots = append(roots, t)
		}
	}
	SortSiblings(roots)
	return roots
}

// SortSiblings orders a sibling slice by Order, breaking ties on CreatedAt
// and finally id so the result is deterministic even on degenerate data.
func SortSiblings(siblings []Task) {
	sort.Slice(siblings, func(i, j int) bool {
		if siblings[i].Order != siblings[j].Order {
			return siblings[i].Order < siblings[j].Order
		}
		if !siblings[i].CreatedAt.Equal(siblings[j].CreatedAt) {
			return siblings[i].CreatedAt.Before(siblings[j].CreatedAt)
		}
		return siblings[i].ID.String() < siblings[j].ID.String()
	})
}

// Siblings returns the tasks sharing the given (zoneID, parentID) group,
// sorted by Order.
func Siblings(tasks map[uuid.UUID]Task, zoneID uuid.UUID, parentID *uuid.UUID) []Task {
	var group []Task
	for _, t := range tasks {
		if t.ZoneID != zoneID {
			continue
		}
		if !SameParent(t.ParentID, parentID) {
			continue
		}
		group = append(group, t)
	}
	SortSiblings(group)
	return group
}

// SameParent compares two nullable parent references.
func SameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Descendants collects every task below id breadth-first. The visited set
// guards against corrupted parent links forming a cycle.
func Descendants(tasks map[uuid.UUID]Task, id uuid.UUID) []Task {
	index := ChildIndex(tasks)
	visited := map[uuid.UUID]bool{id: true}
	var out []Task
	queue := []uuid.UUID{id}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		for _, child := range index[next] {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			out = append(out, child)
			queue = append(queue, child.ID)
		}
	}
	return out
}

// AncestorPath walks parent links from id upward and returns the chain
// ordered root-first, excluding id itself. The walk truncates at a dangling
// reference or on re-entering a node (cycle defense).
func AncestorPath(tasks map[uuid.UUID]Task, id uuid.UUID) []Task {
	visited := map[uuid.UUID]bool{id: true}
	var chain []Task
	current, ok := tasks[id]
	for ok && current.ParentID != nil {
		parent, exists := tasks[*current.ParentID]
		if !exists || visited[parent.ID] {
			break
		}
		visited[parent.ID] = true
		chain = append(chain, parent)
		current = parent
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// InheritedDeadline resolves the effective deadline of a task: its own when
// set, otherwise the nearest ancestor's. Returns nils when no deadline
// applies anywhere on the chain.
func InheritedDeadline(tasks map[uuid.UUID]Task, id uuid.UUID) (*time.Time, DeadlineType) {
	visited := make(map[uuid.UUID]bool)
	current, ok := tasks[id]
	for ok {
		if visited[current.ID] {
			break
		}
		visited[current.ID] = true
		if current.Deadline != nil {
			return current.Deadline, current.DeadlineType
		}
		if current.ParentID == nil {
			break
		}
		current, ok = tasks[*current.ParentID]
	}
	return nil, DeadlineNone
}
