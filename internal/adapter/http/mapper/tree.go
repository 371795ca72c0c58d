package mapper

import (
	"time"

	"github.com/gofrs/uuid"

	"focusflow/internal/adapter/http/dto"
	"focusflow/internal/core/domain"
)

func ToTreeViewResponse(view domain.TreeView) dto.TreeViewResponse {
	out := dto.TreeViewResponse{
		Rows:       make([]dto.TreeRow, 0, len(view.Rows)),
		Breadcrumb: ToTaskItems(view.Breadcrumb),
		Aggregates: make(map[string]dto.AggregatesItem, len(view.Aggregates)),
	}
	for _, row := range view.Rows {
		agg := view.Aggregates[row.Task.ID]
		item := dto.TreeRow{
			Task:                  ToTaskItem(row.Task),
			Depth:                 row.Depth,
			TotalWorkSeconds:      agg.TotalWorkSeconds,
			EstimatedMinutes:      agg.EstimatedMinutes,
			EffectiveDeadlineType: string(row.EffectiveDeadlineType),
		}
		if row.EffectiveDeadline != nil {
			value := row.EffectiveDeadline.Format(time.RFC3339)
			item.EffectiveDeadline = &value
		}
		out.Rows = append(out.Rows, item)
	}
	for id, agg := range view.Aggregates {
		out.Aggregates[id.String()] = dto.AggregatesItem{
			TotalWorkSeconds: agg.TotalWorkSeconds,
			EstimatedMinutes: agg.EstimatedMinutes,
		}
	}
	return out
}

func ToRepositionResponse(rep domain.Reposition) dto.RepositionResponse {
	out := dto.RepositionResponse{
		NewDepth: rep.NewDepth,
		ZoneID:   rep.ZoneID.String(),
	}
	if rep.NewParentID != nil {
		value := rep.NewParentID.String()
		out.NewParentID = &value
	}
	if rep.AnchorID != nil {
		value := rep.AnchorID.String()
		out.AnchorID = &value
	}
	return out
}

func ToSubtreeItem(sub domain.Subtree) dto.SubtreeItem {
	return dto.SubtreeItem{
		Root:        ToTaskItem(sub.Root),
		Descendants: ToTaskItems(sub.Descendants),
	}
}

func ToSubtree(item dto.SubtreeItem) (domain.Subtree, error) {
	root, err := ToTask(item.Root)
	if err != nil {
		return domain.Subtree{}, err
	}
	descendants := make([]domain.Task, 0, len(item.Descendants))
	for _, d := range item.Descendants {
		task, err := ToTask(d)
		if err != nil {
			return domain.Subtree{}, err
		}
		descendants = append(descendants, task)
	}
	return domain.Subtree{Root: root, Descendants: descendants}, nil
}

func ToSnapshotItem(snapshot domain.Snapshot) dto.SnapshotItem {
	return dto.SnapshotItem{
		Zones:     ToZoneItems(snapshot.Zones),
		Tasks:     ToTaskItems(snapshot.Tasks),
		Templates: ToTemplateItems(snapshot.Templates),
	}
}

func ToSnapshot(item dto.SnapshotItem) (domain.Snapshot, error) {
	var snapshot domain.Snapshot
	for _, z := range item.Zones {
		zone, err := ToZone(z)
		if err != nil {
			return domain.Snapshot{}, err
		}
		snapshot.Zones = append(snapshot.Zones, zone)
	}
	for _, t := range item.Tasks {
		task, err := ToTask(t)
		if err != nil {
			return domain.Snapshot{}, err
		}
		snapshot.Tasks = append(snapshot.Tasks, task)
	}
	for _, tpl := range item.Templates {
		template, err := ToTemplate(tpl)
		if err != nil {
			return domain.Snapshot{}, err
		}
		snapshot.Templates = append(snapshot.Templates, template)
	}
	return snapshot, nil
}

func ToTemplateItems(templates []domain.RecurringTemplate) []dto.TemplateItem {
	items := make([]dto.TemplateItem, 0, len(templates))
	for _, tpl := range templates {
		items = append(items, ToTemplateItem(tpl))
	}
	return items
}

func ToTemplateItem(tpl domain.RecurringTemplate) dto.TemplateItem {
	return dto.TemplateItem{
		ID:                  tpl.ID.String(),
		Title:               tpl.Title,
		Description:         tpl.Description,
		ZoneID:              tpl.ZoneID.String(),
		Priority:            string(tpl.Priority),
		IntervalMinutes:     tpl.IntervalMinutes,
		LastTriggeredAt:     tpl.LastTriggeredAt.Format(time.RFC3339),
		DeadlineOffsetHours: tpl.DeadlineOffsetHours,
		IsActive:            tpl.IsActive,
		Scope:               string(tpl.Scope),
	}
}

func ToTemplate(item dto.TemplateItem) (domain.RecurringTemplate, error) {
	id, err := uuid.FromString(item.ID)
	if err != nil {
		return domain.RecurringTemplate{}, err
	}
	zoneID, err := uuid.FromString(item.ZoneID)
	if err != nil {
		return domain.RecurringTemplate{}, err
	}
	tpl := domain.RecurringTemplate{
		ID:                  id,
		Title:               item.Title,
		Description:         item.Description,
		ZoneID:              zoneID,
		Priority:            domain.Priority(item.Priority),
		IntervalMinutes:     item.IntervalMinutes,
		DeadlineOffsetHours: item.DeadlineOffsetHours,
		IsActive:            item.IsActive,
		Scope:               domain.TemplateScope(item.Scope),
	}
	if item.LastTriggeredAt != "" {
		at, err := time.Parse(time.RFC3339, item.LastTriggeredAt)
		if err != nil {
			return domain.RecurringTemplate{}, err
		}
		tpl.LastTriggeredAt = at
	}
	return tpl, nil
}
