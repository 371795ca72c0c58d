package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"focusflow/internal/adapter/http/dto"
	"focusflow/internal/adapter/http/mapper"
	"focusflow/internal/adapter/http/middleware"
	"focusflow/internal/adapter/http/validation"
	"focusflow/internal/core/domain"
	"focusflow/internal/core/ports"
	"focusflow/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}
	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondDomainError(c, lang, err, "failed to create task")
		return
	}
	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	id, ok := pathID(c, lang)
	if !ok {
		return
	}

	raw := map[string]json.RawMessage{}
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}
	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), id, input)
	if err != nil {
		respondDomainError(c, lang, err, "failed to update task")
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	id, ok := pathID(c, lang)
	if !ok {
		return
	}
	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		respondDomainError(c, lang, err, "failed to delete task")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	id, ok := pathID(c, lang)
	if !ok {
		return
	}
	task, err := h.taskService.ToggleTask(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, lang, err, "failed to toggle task")
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) MoveTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	id, ok := pathID(c, lang)
	if !ok {
		return
	}

	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}
	input := domain.MoveTaskInput{
		ParentID: optionalID(req.ParentID),
		AnchorID: optionalID(req.AnchorID),
	}
	if zoneID := optionalID(req.ZoneID); zoneID != nil {
		input.ZoneID = *zoneID
	} else if req.ParentID == nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	if err := h.taskService.MoveTask(c.Request.Context(), id, input); err != nil {
		respondDomainError(c, lang, err, "failed to move task")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) SetCollapsed(c *gin.Context) {
	lang := middleware.GetLang(c)
	id, ok := pathID(c, lang)
	if !ok {
		return
	}
	var req dto.CollapseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}
	if err := h.taskService.SetCollapsed(c.Request.Context(), id, req.Collapsed); err != nil {
		respondDomainError(c, lang, err, "failed to set collapse state")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) SetExpanded(c *gin.Context) {
	lang := middleware.GetLang(c)
	id, ok := pathID(c, lang)
	if !ok {
		return
	}
	var req dto.ExpandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}
	if err := h.taskService.SetExpanded(c.Request.Context(), id, req.Expanded); err != nil {
		respondDomainError(c, lang, err, "failed to set description state")
		return
	}
	c.Status(http.StatusNoContent)
}

// AccumulateTime is the timer collaborator's entry point. An id that no
// longer exists is deliberately a success: the engine treats it as a
// no-op rather than failing a session tick.
func (h *TaskHandler) AccumulateTime(c *gin.Context) {
	lang := middleware.GetLang(c)
	id, ok := pathID(c, lang)
	if !ok {
		return
	}
	var req dto.AccumulateTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}
	h.taskService.AccumulateWorkSeconds(c.Request.Context(), id, req.Seconds)
	c.Status(http.StatusNoContent)
}
