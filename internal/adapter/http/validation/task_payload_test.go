package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"focusflow/internal/adapter/http/dto"
	"focusflow/internal/adapter/http/validation"
	"focusflow/internal/core/domain"
)

func decodeUpdate(t *testing.T, body string) (dto.UpdateTaskRequest, map[string]json.RawMessage) {
	t.Helper()
	var req dto.UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	raw := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return req, raw
}

func TestBuildCreateTaskInput_RequiresDestination(t *testing.T) {
	_, err := validation.BuildCreateTaskInput(dto.CreateTaskRequest{Title: "floating"})
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildCreateTaskInput_BlankTitleRejected(t *testing.T) {
	zone := "0e9bd3f2-5f15-4fbe-bd25-b01561408b46"
	_, err := validation.BuildCreateTaskInput(dto.CreateTaskRequest{Title: "   ", ZoneID: &zone})
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildCreateTaskInput_DeadlineImpliesExactType(t *testing.T) {
	zone := "0e9bd3f2-5f15-4fbe-bd25-b01561408b46"
	deadline := "2026-04-01T18:00:00Z"
	input, err := validation.BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:    "with deadline",
		ZoneID:   &zone,
		Deadline: &deadline,
	})
	require.NoError(t, err)
	require.NotNil(t, input.Deadline)
	require.Equal(t, domain.DeadlineExact, input.DeadlineType)
}

func TestBuildUpdateTaskInput_EmptyPayloadRejected(t *testing.T) {
	req, raw := decodeUpdate(t, `{}`)
	_, err := validation.BuildUpdateTaskInput(req, raw)
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildUpdateTaskInput_AbsentFieldLeavesNoTrace(t *testing.T) {
	req, raw := decodeUpdate(t, `{"title":"renamed"}`)
	input, err := validation.BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)
	require.NotNil(t, input.Title)
	require.Equal(t, "renamed", *input.Title)
	require.False(t, input.DeadlineSet)
	require.False(t, input.EstimatedTimeSet)
	require.Nil(t, input.Priority)
}

func TestBuildUpdateTaskInput_NullClearsDeadline(t *testing.T) {
	req, raw := decodeUpdate(t, `{"deadline":null}`)
	input, err := validation.BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)
	require.True(t, input.DeadlineSet)
	require.Nil(t, input.Deadline)
}

func TestBuildUpdateTaskInput_NullClearsEstimate(t *testing.T) {
	req, raw := decodeUpdate(t, `{"estimated_minutes":null}`)
	input, err := validation.BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)
	require.True(t, input.EstimatedTimeSet)
	require.Nil(t, input.EstimatedTime)
}

func TestBuildUpdateTaskInput_ExplicitValues(t *testing.T) {
	req, raw := decodeUpdate(t, `{"deadline":"2026-04-01T18:00:00Z","estimated_minutes":25,"priority":"low","prevent_auto_complete":true}`)
	input, err := validation.BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)
	require.True(t, input.DeadlineSet)
	require.NotNil(t, input.Deadline)
	require.True(t, input.EstimatedTimeSet)
	require.Equal(t, 25, *input.EstimatedTime)
	require.Equal(t, domain.PriorityLow, *input.Priority)
	require.True(t, *input.PreventAutoComplete)
}

func TestBuildUpdateTaskInput_NullTitleRejected(t *testing.T) {
	req, raw := decodeUpdate(t, `{"title":null}`)
	_, err := validation.BuildUpdateTaskInput(req, raw)
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildUpdateTaskInput_MalformedDeadlineRejected(t *testing.T) {
	req, raw := decodeUpdate(t, `{"deadline":"tomorrow-ish"}`)
	_, err := validation.BuildUpdateTaskInput(req, raw)
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}
