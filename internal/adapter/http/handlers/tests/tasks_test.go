package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"focusflow/internal/adapter/http/dto"
	"focusflow/internal/adapter/http/handlers"
	"focusflow/internal/adapter/http/middleware"
	"focusflow/internal/core/domain"
	"focusflow/pkg/apierrors"
	"focusflow/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id uuid.UUID, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskServiceMock) ToggleTask(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) MoveTask(ctx context.Context, id uuid.UUID, input domain.MoveTaskInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *taskServiceMock) SetCollapsed(ctx context.Context, id uuid.UUID, collapsed bool) error {
	args := m.Called(ctx, id, collapsed)
	return args.Error(0)
}

func (m *taskServiceMock) SetExpanded(ctx context.Context, id uuid.UUID, expanded bool) error {
	args := m.Called(ctx, id, expanded)
	return args.Error(0)
}

func (m *taskServiceMock) AccumulateWorkSeconds(ctx context.Context, id uuid.UUID, seconds int64) {
	m.Called(ctx, id, seconds)
}

func taskRouter(serviceMock *taskServiceMock) *gin.Engine {
	handler := handlers.NewTaskHandler(serviceMock)
	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.POST("/tasks", handler.CreateTask)
	api.PATCH("/tasks/:id", handler.UpdateTask)
	api.DELETE("/tasks/:id", handler.DeleteTask)
	api.POST("/tasks/:id/toggle", handler.ToggleTask)
	api.POST("/tasks/:id/move", handler.MoveTask)
	api.POST("/tasks/:id/time", handler.AccumulateTime)
	return router
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	zoneID := uuid.Must(uuid.NewV4())
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	created := domain.Task{
		ID:        uuid.Must(uuid.NewV4()),
		ZoneID:    zoneID,
		Title:     "Write the quarterly review",
		Priority:  domain.PriorityHigh,
		CreatedAt: createdAt,
	}

	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, mock.MatchedBy(func(input domain.CreateTaskInput) bool {
		return input.Title == "Write the quarterly review" &&
			input.ZoneID == zoneID &&
			input.Priority == domain.PriorityHigh
	})).Return(created, nil).Once()

	router := taskRouter(serviceMock)

	body := `{"title":"Write the quarterly review","zone_id":"` + zoneID.String() + `","priority":"high"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, created.ID.String(), got.ID)
	require.Equal(t, zoneID.String(), got.ZoneID)
	require.Equal(t, "Write the quarterly review", got.Title)
	require.Equal(t, "high", got.Priority)
	require.Equal(t, "2026-03-01T09:00:00Z", got.CreatedAt)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_MissingDestinationRejected(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBufferString(`{"title":"floating"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "CreateTask")
}

func TestTaskHandler_UpdateTask_NullClearsDeadline(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	updated := domain.Task{ID: id, ZoneID: uuid.Must(uuid.NewV4()), Title: "kept", Priority: domain.PriorityMedium}

	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, id, mock.MatchedBy(func(input domain.UpdateTaskInput) bool {
		return input.DeadlineSet && input.Deadline == nil
	})).Return(updated, nil).Once()

	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/"+id.String(), bytes.NewBufferString(`{"deadline":null}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ToggleTask_NotFoundTranslated(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	serviceMock := new(taskServiceMock)
	serviceMock.On("ToggleTask", mock.Anything, id).Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/"+id.String()+"/toggle", nil)
	req.Header.Set("Accept-Language", translator.LanguageFr)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusNotFound, got.ErrDetails.Code)
	require.Equal(t, "Tâche introuvable", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_MoveTask_CycleConflict(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	parentID := uuid.Must(uuid.NewV4())

	serviceMock := new(taskServiceMock)
	serviceMock.On("MoveTask", mock.Anything, id, mock.Anything).Return(domain.ErrHierarchyCycle).Once()

	router := taskRouter(serviceMock)

	body := `{"parent_id":"` + parentID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/"+id.String()+"/move", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_InvalidID(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/not-a-uuid", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid id", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "DeleteTask")
}

func TestTaskHandler_AccumulateTime(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	serviceMock := new(taskServiceMock)
	serviceMock.On("AccumulateWorkSeconds", mock.Anything, id, int64(30)).Once()

	router := taskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/"+id.String()+"/time", bytes.NewBufferString(`{"seconds":30}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}
