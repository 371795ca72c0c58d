package domain

import (
	"sort"

	"github.com/gofrs/uuid"
)

// Aggregates is the derived metric pair for one task.
type Aggregates struct {
	TotalWorkSeconds int64
	EstimatedMinutes int
}

// ComputeAggregates derives, for every task id, the cumulative work time
// (own seconds plus all descendants) and the effective estimated time (an
// explicit positive estimate wins, otherwise the sum of the children's
// effective estimates).
//
// The pass is memoized so no subtree is computed twice, runs on an explicit
// stack rather than the call stack, and is order-independent: ids are
// visited in sorted order so repeated runs over the same collection yield
// byte-identical maps even on corrupted data. A node re-entered during its
// own ancestry (cycle) contributes zero to its caller and is skipped.
func ComputeAggregates(tasks map[uuid.UUID]Task) map[uuid.UUID]Aggregates {
	children := make(map[uuid.UUID][]uuid.UUID, len(tasks))
	for parentID, kids := range ChildIndex(tasks) {
		ids := make([]uuid.UUID, len(kids))
		for i, k := range kids {
			ids[i] = k.ID
		}
		children[parentID] = ids
	}

	memo := make(map[uuid.UUID]Aggregates, len(tasks))
	onPath := make(map[uuid.UUID]bool)

	type frame struct {
		id   uuid.UUID
		next int
	}

	compute := func(rootID uuid.UUID) {
		if _, done := memo[rootID]; done {
			return
		}
		stack := []frame{{id: rootID}}
		onPath[rootID] = true
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			kids := children[top.id]
			if top.next < len(kids) {
				childID := kids[top.next]
				top.next++
				if _, done := memo[childID]; done {
					continue
				}
				if onPath[childID] {
					continue
				}
				onPath[childID] = true
				stack = append(stack, frame{id: childID})
				continue
			}

			task := tasks[top.id]
			agg := Aggregates{TotalWorkSeconds: task.OwnTime}
			childEstimate := 0
			for _, childID := range kids {
				if childAgg, ok := memo[childID]; ok {
					agg.TotalWorkSeconds += childAgg.TotalWorkSeconds
					childEstimate += childAgg.EstimatedMinutes
				}
			}
			if task.EstimatedTime != nil && *task.EstimatedTime > 0 {
				agg.EstimatedMinutes = *task.EstimatedTime
			} else {
				agg.EstimatedMinutes = childEstimate
			}
			memo[top.id] = agg
			delete(onPath, top.id)
			stack = stack[:len(stack)-1]
		}
	}

	ids := make([]uuid.UUID, 0, len(tasks))
	for id := range tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	// Roots first so subtree memoization does most of the work, then a
	// sweep over everything still unvisited (orphans inside cycles have no
	// reachable root).
	for _, id := range ids {
		if IsRoot(tasks, tasks[id]) {
			compute(id)
		}
	}
	for _, id := range ids {
		compute(id)
	}
	return memo
}
