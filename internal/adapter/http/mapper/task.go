package mapper

import (
	"time"

	"github.com/gofrs/uuid"

	"focusflow/internal/adapter/http/dto"
	"focusflow/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:                  task.ID.String(),
		ZoneID:              task.ZoneID.String(),
		Title:               task.Title,
		Description:         task.Description,
		Completed:           task.Completed,
		Priority:            string(task.Priority),
		DeadlineType:        string(task.DeadlineType),
		Order:               task.Order,
		CreatedAt:           task.CreatedAt.Format(time.RFC3339),
		OwnTimeSeconds:      task.OwnTime,
		IsCollapsed:         task.IsCollapsed,
		Expanded:            task.Expanded,
		PreventAutoComplete: task.PreventAutoComplete,
	}

	if task.ParentID != nil {
		value := task.ParentID.String()
		item.ParentID = &value
	}
	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}
	if task.Deadline != nil {
		value := task.Deadline.Format(time.RFC3339)
		item.Deadline = &value
	}
	if task.EstimatedTime != nil {
		value := *task.EstimatedTime
		item.EstimatedMinutes = &value
	}

	return item
}

// ToTask rebuilds a domain task from its wire form. Used by the paste and
// import paths; malformed fields surface as an error so the caller can
// reject the payload as a whole.
func ToTask(item dto.TaskItem) (domain.Task, error) {
	id, err := uuid.FromString(item.ID)
	if err != nil {
		return domain.Task{}, err
	}
	zoneID, err := uuid.FromString(item.ZoneID)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:                  id,
		ZoneID:              zoneID,
		Title:               item.Title,
		Description:         item.Description,
		Completed:           item.Completed,
		Priority:            domain.Priority(item.Priority),
		DeadlineType:        domain.DeadlineType(item.DeadlineType),
		Order:               item.Order,
		OwnTime:             item.OwnTimeSeconds,
		IsCollapsed:         item.IsCollapsed,
		Expanded:            item.Expanded,
		PreventAutoComplete: item.PreventAutoComplete,
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if task.DeadlineType == "" {
		task.DeadlineType = domain.DeadlineNone
	}

	if item.ParentID != nil {
		parentID, err := uuid.FromString(*item.ParentID)
		if err != nil {
			return domain.Task{}, err
		}
		task.ParentID = &parentID
	}
	if item.CreatedAt != "" {
		createdAt, err := time.Parse(time.RFC3339, item.CreatedAt)
		if err != nil {
			return domain.Task{}, err
		}
		task.CreatedAt = createdAt
	}
	if item.CompletedAt != nil {
		completedAt, err := time.Parse(time.RFC3339, *item.CompletedAt)
		if err != nil {
			return domain.Task{}, err
		}
		task.CompletedAt = &completedAt
	}
	if item.Deadline != nil {
		deadline, err := time.Parse(time.RFC3339, *item.Deadline)
		if err != nil {
			return domain.Task{}, err
		}
		task.Deadline = &deadline
	}
	if item.EstimatedMinutes != nil {
		value := *item.EstimatedMinutes
		task.EstimatedTime = &value
	}

	return task, nil
}
