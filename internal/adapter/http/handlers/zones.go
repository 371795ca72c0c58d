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

type ZoneHandler struct {
	zoneService ports.ZoneService
}

func NewZoneHandler(zoneService ports.ZoneService) *ZoneHandler {
	return &ZoneHandler{zoneService: zoneService}
}

func (h *ZoneHandler) ListZones(c *gin.Context) {
	lang := middleware.GetLang(c)
	zones, err := h.zoneService.ListZones(c.Request.Context())
	if err != nil {
		respondDomainError(c, lang, err, "failed to list zones")
		return
	}
	c.JSON(http.StatusOK, mapper.ToZoneItems(zones))
}

func (h *ZoneHandler) CreateZone(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidZonePayload, lang))
		return
	}

	input := domain.CreateZoneInput{Name: req.Name}
	if req.Color != nil {
		input.Color = *req.Color
	}
	zone, err := h.zoneService.CreateZone(c.Request.Context(), input)
	if err != nil {
		respondDomainError(c, lang, err, "failed to create zone")
		return
	}
	c.JSON(http.StatusCreated, mapper.ToZoneItem(zone))
}

func (h *ZoneHandler) UpdateZone(c *gin.Context) {
	lang := middleware.GetLang(c)
	id, ok := pathID(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Name == nil && req.Color == nil) {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidZonePayload, lang))
		return
	}

	zone, err := h.zoneService.UpdateZone(c.Request.Context(), id, domain.UpdateZoneInput{Name: req.Name, Color: req.Color})
	if err != nil {
		respondDomainError(c, lang, err, "failed to update zone")
		return
	}
	c.JSON(http.StatusOK, mapper.ToZoneItem(zone))
}

func (h *ZoneHandler) DeleteZone(c *gin.Context) {
	lang := middleware.GetLang(c)
	id, ok := pathID(c, lang)
	if !ok {
		return
	}
	if err := h.zoneService.DeleteZone(c.Request.Context(), id); err != nil {
		respondDomainError(c, lang, err, "failed to delete zone")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ZoneHandler) ReorderZones(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.ReorderZonesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidZonePayload, lang))
		return
	}
	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.FromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
			return
		}
		ids = append(ids, id)
	}
	if err := h.zoneService.ReorderZones(c.Request.Context(), ids); err != nil {
		respondDomainError(c, lang, err, "failed to reorder zones")
		return
	}
	c.Status(http.StatusNoContent)
}
