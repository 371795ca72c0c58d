package domain_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"

	"focusflow/internal/core/domain"
)

func TestChildIndex_SortsByOrder(t *testing.T) {
	f := newForest()
	parent := f.add("parent", nil)
	late := f.add("late", ptrID(parent.ID), func(task *domain.Task) { task.Order = 5 })
	early := f.add("early", ptrID(parent.ID), func(task *domain.Task) { task.Order = 1 })

	index := domain.ChildIndex(f.tasks)

	kids := index[parent.ID]
	require.Len(t, kids, 2)
	require.Equal(t, early.ID, kids[0].ID)
	require.Equal(t, late.ID, kids[1].ID)
}

func TestSortSiblings_BreaksTiesOnCreatedAt(t *testing.T) {
	f := newForest()
	older := f.add("older", nil, func(task *domain.Task) { task.Order = 0 })
	newer := f.add("newer", nil, func(task *domain.Task) { task.Order = 0 })

	siblings := []domain.Task{newer, older}
	domain.SortSiblings(siblings)

	require.Equal(t, older.ID, siblings[0].ID)
	require.Equal(t, newer.ID, siblings[1].ID)
}

func TestIsRoot_DanglingParentCountsAsRoot(t *testing.T) {
	f := newForest()
	missing := newID()
	orphan := f.add("orphan", &missing)
	root := f.add("root", nil)
	child := f.add("child", ptrID(root.ID))

	require.True(t, domain.IsRoot(f.tasks, orphan))
	require.True(t, domain.IsRoot(f.tasks, root))
	require.False(t, domain.IsRoot(f.tasks, child))
}

func TestDescendants_CollectsWholeSubtree(t *testing.T) {
	f := newForest()
	root := f.add("root", nil)
	child := f.add("child", ptrID(root.ID))
	grandchild := f.add("grandchild", ptrID(child.ID))
	f.add("unrelated", nil)

	got := domain.Descendants(f.tasks, root.ID)

	ids := make(map[uuid.UUID]bool, len(got))
	for _, d := range got {
		ids[d.ID] = true
	}
	require.Len(t, got, 2)
	require.True(t, ids[child.ID])
	require.True(t, ids[grandchild.ID])
}

func TestDescendants_TerminatesOnCycle(t *testing.T) {
	f := newForest()
	a := f.add("a", nil)
	b := f.add("b", ptrID(a.ID))

	corrupted := f.tasks[a.ID]
	corrupted.ParentID = ptrID(b.ID)
	f.tasks[a.ID] = corrupted

	got := domain.Descendants(f.tasks, a.ID)
	require.Len(t, got, 1)
	require.Equal(t, b.ID, got[0].ID)
}

func TestAncestorPath_RootFirst(t *testing.T) {
	f := newForest()
	root := f.add("root", nil)
	child := f.add("child", ptrID(root.ID))
	grandchild := f.add("grandchild", ptrID(child.ID))

	path := domain.AncestorPath(f.tasks, grandchild.ID)

	require.Len(t, path, 2)
	require.Equal(t, root.ID, path[0].ID)
	require.Equal(t, child.ID, path[1].ID)
}

func TestInheritedDeadline_OwnDeadlineWins(t *testing.T) {
	f := newForest()
	parentDeadline := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	ownDeadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	root := f.add("root", nil, func(task *domain.Task) {
		task.Deadline = &parentDeadline
		task.DeadlineType = domain.DeadlineWeek
	})
	child := f.add("child", ptrID(root.ID), func(task *domain.Task) {
		task.Deadline = &ownDeadline
		task.DeadlineType = domain.DeadlineExact
	})

	deadline, deadlineType := domain.InheritedDeadline(f.tasks, child.ID)
	require.NotNil(t, deadline)
	require.Equal(t, ownDeadline, *deadline)
	require.Equal(t, domain.DeadlineExact, deadlineType)
}

func TestInheritedDeadline_FallsBackToNearestAncestor(t *testing.T) {
	f := newForest()
	rootDeadline := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	root := f.add("root", nil, func(task *domain.Task) {
		task.Deadline = &rootDeadline
		task.DeadlineType = domain.DeadlineTomorrow
	})
	child := f.add("child", ptrID(root.ID))
	grandchild := f.add("grandchild", ptrID(child.ID))

	deadline, deadlineType := domain.InheritedDeadline(f.tasks, grandchild.ID)
	require.NotNil(t, deadline)
	require.Equal(t, rootDeadline, *deadline)
	require.Equal(t, domain.DeadlineTomorrow, deadlineType)
}

func TestInheritedDeadline_NoneAnywhere(t *testing.T) {
	f := newForest()
	root := f.add("root", nil)
	child := f.add("child", ptrID(root.ID))

	deadline, deadlineType := domain.InheritedDeadline(f.tasks, child.ID)
	require.Nil(t, deadline)
	require.Equal(t, domain.DeadlineNone, deadlineType)
}
