package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"

	"focusflow/internal/adapter/http/dto"
	"focusflow/internal/adapter/http/mapper"
	"focusflow/internal/adapter/http/middleware"
	"focusflow/internal/core/ports"
	"focusflow/pkg/apierrors"
)

type ClipboardHandler struct {
	clipboardService ports.ClipboardService
}

func NewClipboardHandler(clipboardService ports.ClipboardService) *ClipboardHandler {
	return &ClipboardHandler{clipboardService: clipboardService}
}

func (h *ClipboardHandler) CopySubtree(c *gin.Context) {
	lang := middleware.GetLang(c)
	id, ok := pathID(c, lang)
	if !ok {
		return
	}
	sub, err := h.clipboardService.CopySubtree(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, lang, err, "failed to copy subtree")
		return
	}
	c.JSON(http.StatusOK, mapper.ToSubtreeItem(sub))
}

func (h *ClipboardHandler) PasteSubtree(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.PasteSubtreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}
	sub, err := mapper.ToSubtree(req.Subtree)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	var zoneID uuid.UUID
	if id := optionalID(req.ZoneID); id != nil {
		zoneID = *id
	} else if req.ParentID == nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	root, err := h.clipboardService.PasteSubtree(c.Request.Context(), sub, zoneID, optionalID(req.ParentID))
	if err != nil {
		respondDomainError(c, lang, err, "failed to paste subtree")
		return
	}
	c.JSON(http.StatusCreated, mapper.ToTaskItem(root))
}

func (h *ClipboardHandler) ExportZone(c *gin.Context) {
	lang := middleware.GetLang(c)
	id, ok := pathID(c, lang)
	if !ok {
		return
	}
	snapshot, err := h.clipboardService.ExportZone(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, lang, err, "failed to export zone")
		return
	}
	c.JSON(http.StatusOK, mapper.ToSnapshotItem(snapshot))
}

func (h *ClipboardHandler) ImportSnapshot(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SnapshotItem
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSnapshot, lang))
		return
	}
	snapshot, err := mapper.ToSnapshot(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSnapshot, lang))
		return
	}
	if err := h.clipboardService.ImportSnapshot(c.Request.Context(), snapshot); err != nil {
		respondDomainError(c, lang, err, "failed to import snapshot")
		return
	}
	c.Status(http.StatusNoContent)
}
