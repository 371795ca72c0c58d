package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"focusflow/internal/core/domain"
)

var toggleTime = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func TestToggleCompletion_CascadesDownward(t *testing.T) {
	f := newForest()
	root := f.add("root", nil)
	child := f.add("child", ptrID(root.ID))
	grandchild := f.add("grandchild", ptrID(child.ID))

	require.True(t, domain.ToggleCompletion(f.tasks, root.ID, toggleTime))

	require.True(t, f.tasks[root.ID].Completed)
	require.True(t, f.tasks[child.ID].Completed)
	require.True(t, f.tasks[grandchild.ID].Completed)
	require.NotNil(t, f.tasks[grandchild.ID].CompletedAt)
	require.Equal(t, toggleTime, *f.tasks[grandchild.ID].CompletedAt)
}

func TestToggleCompletion_UncheckCascadesDownward(t *testing.T) {
	f := newForest()
	root := f.add("root", nil, func(task *domain.Task) { task.Completed = true })
	child := f.add("child", ptrID(root.ID), func(task *domain.Task) { task.Completed = true })

	require.True(t, domain.ToggleCompletion(f.tasks, root.ID, toggleTime))

	require.False(t, f.tasks[root.ID].Completed)
	require.False(t, f.tasks[child.ID].Completed)
	require.Nil(t, f.tasks[child.ID].CompletedAt)
}

func TestToggleCompletion_LastChildCompletesAncestors(t *testing.T) {
	f := newForest()
	root := f.add("root", nil)
	parent := f.add("parent", ptrID(root.ID))
	f.add("done", ptrID(parent.ID), func(task *domain.Task) { task.Completed = true })
	pending := f.add("pending", ptrID(parent.ID))

	require.True(t, domain.ToggleCompletion(f.tasks, pending.ID, toggleTime))

	require.True(t, f.tasks[parent.ID].Completed)
	require.True(t, f.tasks[root.ID].Completed)
}

func TestToggleCompletion_SiblingStillOpenLeavesParentOpen(t *testing.T) {
	f := newForest()
	parent := f.add("parent", nil)
	first := f.add("first", ptrID(parent.ID))
	f.add("second", ptrID(parent.ID))

	require.True(t, domain.ToggleCompletion(f.tasks, first.ID, toggleTime))

	require.True(t, f.tasks[first.ID].Completed)
	require.False(t, f.tasks[parent.ID].Completed)
}

func TestToggleCompletion_UncheckReopensAncestors(t *testing.T) {
	f := newForest()
	root := f.add("root", nil, func(task *domain.Task) { task.Completed = true })
	parent := f.add("parent", ptrID(root.ID), func(task *domain.Task) { task.Completed = true })
	child := f.add("child", ptrID(parent.ID), func(task *domain.Task) { task.Completed = true })

	require.True(t, domain.ToggleCompletion(f.tasks, child.ID, toggleTime))

	require.False(t, f.tasks[child.ID].Completed)
	require.False(t, f.tasks[parent.ID].Completed)
	require.False(t, f.tasks[root.ID].Completed)
}

func TestToggleCompletion_PinnedParentStopsTheClimb(t *testing.T) {
	f := newForest()
	root := f.add("root", nil)
	pinned := f.add("pinned", ptrID(root.ID), func(task *domain.Task) { task.PreventAutoComplete = true })
	child := f.add("child", ptrID(pinned.ID))

	require.True(t, domain.ToggleCompletion(f.tasks, child.ID, toggleTime))

	require.True(t, f.tasks[child.ID].Completed)
	require.False(t, f.tasks[pinned.ID].Completed)
	require.False(t, f.tasks[root.ID].Completed)
}

func TestToggleCompletion_PinnedTaskStillCascadesDownward(t *testing.T) {
	f := newForest()
	pinned := f.add("pinned", nil, func(task *domain.Task) { task.PreventAutoComplete = true })
	child := f.add("child", ptrID(pinned.ID))

	require.True(t, domain.ToggleCompletion(f.tasks, pinned.ID, toggleTime))

	require.True(t, f.tasks[pinned.ID].Completed)
	require.True(t, f.tasks[child.ID].Completed)
}

func TestToggleCompletion_MissingIDIsNoOp(t *testing.T) {
	f := newForest()
	f.add("root", nil)

	require.False(t, domain.ToggleCompletion(f.tasks, newID(), toggleTime))
}
