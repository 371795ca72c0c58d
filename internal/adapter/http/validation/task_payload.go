package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid"

	"focusflow/internal/adapter/http/dto"
	"focusflow/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.ZoneID == nil && req.ParentID == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		Title:        title,
		Priority:     domain.PriorityMedium,
		DeadlineType: domain.DeadlineNone,
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.ZoneID != nil {
		zoneID, err := uuid.FromString(*req.ZoneID)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.ZoneID = zoneID
	}
	if req.ParentID != nil {
		parentID, err := uuid.FromString(*req.ParentID)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.ParentID = &parentID
	}
	if req.Priority != nil {
		input.Priority = domain.Priority(*req.Priority)
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Deadline = &deadline
		input.DeadlineType = domain.DeadlineExact
	}
	if req.DeadlineType != nil {
		input.DeadlineType = domain.DeadlineType(*req.DeadlineType)
	}
	input.EstimatedTime = req.EstimatedMinutes

	return input, nil
}

// BuildUpdateTaskInput distinguishes "field absent" from "field set to
// null" via the raw message map: an explicit null clears the nullable
// field, absence leaves it untouched.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var input domain.UpdateTaskInput

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Title = &value
	}

	if hasJSONField(raw, "description") {
		if isJSONNull(raw["description"]) {
			empty := ""
			input.Description = &empty
		} else {
			input.Description = req.Description
		}
	}

	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := domain.Priority(*req.Priority)
		input.Priority = &value
	}

	if hasJSONField(raw, "deadline") {
		input.DeadlineSet = true
		if !isJSONNull(raw["deadline"]) {
			if req.Deadline == nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			deadline, err := time.Parse(time.RFC3339, *req.Deadline)
			if err != nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			input.Deadline = &deadline
		}
	}

	if hasJSONField(raw, "deadline_type") {
		if req.DeadlineType == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := domain.DeadlineType(*req.DeadlineType)
		input.DeadlineType = &value
	}

	if hasJSONField(raw, "estimated_minutes") {
		input.EstimatedTimeSet = true
		if !isJSONNull(raw["estimated_minutes"]) {
			if req.EstimatedMinutes == nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			input.EstimatedTime = req.EstimatedMinutes
		}
	}

	if hasJSONField(raw, "prevent_auto_complete") {
		if req.PreventAutoComplete == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.PreventAutoComplete = req.PreventAutoComplete
	}

	return input, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "deadline") ||
		hasJSONField(raw, "deadline_type") ||
		hasJSONField(raw, "estimated_minutes") ||
		hasJSONField(raw, "prevent_auto_complete")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
