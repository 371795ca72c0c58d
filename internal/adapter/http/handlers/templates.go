package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"

	"focusflow/internal/adapter/http/dto"
	"focusflow/internal/adapter/http/mapper"
	"focusflow/internal/adapter/http/middleware"
	"focusflow/internal/core/domain"
	"focusflow/internal/core/ports"
	"focusflow/pkg/apierrors"
)

type TemplateHandler struct {
	schedulerService ports.SchedulerService
}

func NewTemplateHandler(schedulerService ports.SchedulerService) *TemplateHandler {
	return &TemplateHandler{schedulerService: schedulerService}
}

func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	lang := middleware.GetLang(c)
	templates, err := h.schedulerService.ListTemplates(c.Request.Context())
	if err != nil {
		respondDomainError(c, lang, err, "failed to list templates")
		return
	}
	c.JSON(http.StatusOK, mapper.ToTemplateItems(templates))
}

func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}
	zoneID, err := uuid.FromString(req.ZoneID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
		return
	}

	input := domain.CreateTemplateInput{
		Title:           req.Title,
		ZoneID:          zoneID,
		IntervalMinutes: req.IntervalMinutes,
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.Priority != nil {
		input.Priority = domain.Priority(*req.Priority)
	}
	if req.DeadlineOffsetHours != nil {
		input.DeadlineOffsetHours = *req.DeadlineOffsetHours
	}
	if req.Scope != nil {
		input.Scope = domain.TemplateScope(*req.Scope)
	}

	tpl, err := h.schedulerService.CreateTemplate(c.Request.Context(), input)
	if err != nil {
		respondDomainError(c, lang, err, "failed to create template")
		return
	}
	c.JSON(http.StatusCreated, mapper.ToTemplateItem(tpl))
}

func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	lang := middleware.GetLang(c)
	id, ok := pathID(c, lang)
	if !ok {
		return
	}
	if err := h.schedulerService.DeleteTemplate(c.Request.Context(), id); err != nil {
		respondDomainError(c, lang, err, "failed to delete template")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TemplateHandler) SetTemplateActive(c *gin.Context) {
	lang := middleware.GetLang(c)
	id, ok := pathID(c, lang)
	if !ok {
		return
	}
	var req dto.SetTemplateActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}
	if err := h.schedulerService.SetTemplateActive(c.Request.Context(), id, req.Active); err != nil {
		respondDomainError(c, lang, err, "failed to update template")
		return
	}
	c.Status(http.StatusNoContent)
}

// RunRecurringCheck is the externally driven scheduler tick.
func (h *TemplateHandler) RunRecurringCheck(c *gin.Context) {
	lang := middleware.GetLang(c)
	spawned, err := h.schedulerService.RunRecurringCheck(c.Request.Context())
	if err != nil {
		respondDomainError(c, lang, err, "failed to run recurring check")
		return
	}
	c.JSON(http.StatusOK, dto.RecurringCheckResponse{Spawned: spawned})
}
