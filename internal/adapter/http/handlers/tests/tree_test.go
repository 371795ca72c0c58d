package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"focusflow/internal/adapter/http/dto"
	"focusflow/internal/adapter/http/handlers"
	"focusflow/internal/adapter/http/middleware"
	"focusflow/internal/core/domain"
	"focusflow/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type treeServiceMock struct {
	mock.Mock
}

func (m *treeServiceMock) TreeView(ctx context.Context, zoneID, focusID *uuid.UUID) (domain.TreeView, error) {
	args := m.Called(ctx, zoneID, focusID)
	return args.Get(0).(domain.TreeView), args.Error(1)
}

func (m *treeServiceMock) ResolveReposition(ctx context.Context, draggedID, targetID uuid.UUID, offsetPx int, zoneID, focusID *uuid.UUID) (domain.Reposition, error) {
	args := m.Called(ctx, draggedID, targetID, offsetPx, zoneID, focusID)
	return args.Get(0).(domain.Reposition), args.Error(1)
}

func treeRouter(serviceMock *treeServiceMock) *gin.Engine {
	handler := handlers.NewTreeHandler(serviceMock)
	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.GET("/tree", handler.GetTree)
	api.POST("/tasks/:id/reposition", handler.Reposition)
	return router
}

func TestTreeHandler_GetTree_Success(t *testing.T) {
	zoneID := uuid.Must(uuid.NewV4())
	rootID := uuid.Must(uuid.NewV4())
	childID := uuid.Must(uuid.NewV4())

	view := domain.TreeView{
		Rows: []domain.Row{
			{Task: domain.Task{ID: rootID, ZoneID: zoneID, Title: "root", Priority: domain.PriorityMedium}, Depth: 0},
			{Task: domain.Task{ID: childID, ZoneID: zoneID, ParentID: &rootID, Title: "child", Priority: domain.PriorityLow}, Depth: 1},
		},
		Aggregates: map[uuid.UUID]domain.Aggregates{
			rootID:  {TotalWorkSeconds: 90, EstimatedMinutes: 45},
			childID: {TotalWorkSeconds: 90, EstimatedMinutes: 45},
		},
	}

	serviceMock := new(treeServiceMock)
	serviceMock.On("TreeView", mock.Anything, mock.MatchedBy(func(id *uuid.UUID) bool {
		return id != nil && *id == zoneID
	}), (*uuid.UUID)(nil)).Return(view, nil).Once()

	router := treeRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/tree?zone_id="+zoneID.String(), nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TreeViewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Rows, 2)
	require.Equal(t, rootID.String(), got.Rows[0].Task.ID)
	require.Equal(t, 0, got.Rows[0].Depth)
	require.Equal(t, int64(90), got.Rows[0].TotalWorkSeconds)
	require.Equal(t, 45, got.Rows[0].EstimatedMinutes)
	require.Equal(t, childID.String(), got.Rows[1].Task.ID)
	require.Equal(t, rootID.String(), *got.Rows[1].Task.ParentID)
	require.Equal(t, 1, got.Rows[1].Depth)
	require.Contains(t, got.Aggregates, rootID.String())
	serviceMock.AssertExpectations(t)
}

func TestTreeHandler_GetTree_BadZoneIDRejected(t *testing.T) {
	serviceMock := new(treeServiceMock)
	router := treeRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/tree?zone_id=banana", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "TreeView")
}

func TestTreeHandler_Reposition_Success(t *testing.T) {
	draggedID := uuid.Must(uuid.NewV4())
	targetID := uuid.Must(uuid.NewV4())
	parentID := uuid.Must(uuid.NewV4())
	anchorID := uuid.Must(uuid.NewV4())
	zoneID := uuid.Must(uuid.NewV4())

	rep := domain.Reposition{
		NewDepth:    1,
		NewParentID: &parentID,
		AnchorID:    &anchorID,
		ZoneID:      zoneID,
	}

	serviceMock := new(treeServiceMock)
	serviceMock.On("ResolveReposition", mock.Anything, draggedID, targetID, 24, (*uuid.UUID)(nil), (*uuid.UUID)(nil)).
		Return(rep, nil).Once()

	router := treeRouter(serviceMock)

	body := `{"target_id":"` + targetID.String() + `","offset_px":24}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/"+draggedID.String()+"/reposition", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.RepositionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 1, got.NewDepth)
	require.Equal(t, parentID.String(), *got.NewParentID)
	require.Equal(t, anchorID.String(), *got.AnchorID)
	require.Equal(t, zoneID.String(), got.ZoneID)
	serviceMock.AssertExpectations(t)
}

func TestTreeHandler_Reposition_UnknownTarget(t *testing.T) {
	draggedID := uuid.Must(uuid.NewV4())
	targetID := uuid.Must(uuid.NewV4())

	serviceMock := new(treeServiceMock)
	serviceMock.On("ResolveReposition", mock.Anything, draggedID, targetID, 0, (*uuid.UUID)(nil), (*uuid.UUID)(nil)).
		Return(domain.Reposition{}, domain.ErrTaskNotFound).Once()

	router := treeRouter(serviceMock)

	body := `{"target_id":"` + targetID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/"+draggedID.String()+"/reposition", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}
