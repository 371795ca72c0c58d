package domain

import (
	"time"

	"github.com/gofrs/uuid"
)

// Subtree is a serializable slice of the forest: a root task followed by
// its full descendant set. It is the unit the clipboard and template
// collaborators exchange with the engine.
type Subtree struct {
	Root        Task
	Descendants []Task
}

// ExtractSubtree copies the task identified by id together with every
// descendant. Returns false when the id is absent.
func ExtractSubtree(tasks map[uuid.UUID]Task, id uuid.UUID) (Subtree, bool) {
	root, ok := tasks[id]
	if !ok {
		return Subtree{}, false
	}
	return Subtree{Root: root, Descendants: Descendants(tasks, id)}, true
}

// CloneSubtree re-ids the whole subtree so a paste never collides with the
// destination collection. The clone's root is attached to parentID inside
// zoneID; every node, descendants included, is stamped with the
// destination zone. Completion state, collapse flags and estimates are
// preserved; logged focus time is not (a pasted copy has done no work yet).
func CloneSubtree(sub Subtree, zoneID uuid.UUID, parentID *uuid.UUID, now time.Time) []Task {
	fresh := make(map[uuid.UUID]uuid.UUID, len(sub.Descendants)+1)
	fresh[sub.Root.ID] = uuid.Must(uuid.NewV4())
	for _, d := range sub.Descendants {
		fresh[d.ID] = uuid.Must(uuid.NewV4())
	}

	remap := func(t Task, parent *uuid.UUID) Task {
		t.ID = fresh[t.ID]
		t.ZoneID = zoneID
		t.ParentID = parent
		t.CreatedAt = now
		t.OwnTime = 0
		return t
	}

	out := make([]Task, 0, len(sub.Descendants)+1)
	out = append(out, remap(sub.Root, parentID))
	for _, d := range sub.Descendants {
		var parent *uuid.UUID
		if d.ParentID != nil {
			if mapped, ok := fresh[*d.ParentID]; ok {
				parent = &mapped
			}
		}
		if parent == nil {
			// Dangling link inside the payload: reattach under the new root.
			rootID := fresh[sub.Root.ID]
			parent = &rootID
		}
		out = append(out, remap(d, parent))
	}
	return out
}
