package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focusflow/internal/adapter/http/dto"
	"focusflow/internal/adapter/http/mapper"
	"focusflow/internal/adapter/http/middleware"
	"focusflow/internal/core/ports"
	"focusflow/pkg/apierrors"
)

type TreeHandler struct {
	treeService ports.TreeService
}

func NewTreeHandler(treeService ports.TreeService) *TreeHandler {
	return &TreeHandler{treeService: treeService}
}

// GetTree serves the rendering collaborator's read: flattened rows with
// depths, the focus breadcrumb and the derived metric map, in one
// consistent response. Query parameters: zone_id, focus_id (both optional).
func (h *TreeHandler) GetTree(c *gin.Context) {
	lang := middleware.GetLang(c)

	zoneID, ok := queryID(c, "zone_id")
	if !ok {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
		return
	}
	focusID, ok := queryID(c, "focus_id")
	if !ok {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
		return
	}

	view, err := h.treeService.TreeView(c.Request.Context(), zoneID, focusID)
	if err != nil {
		respondDomainError(c, lang, err, "failed to build tree view")
		return
	}
	c.JSON(http.StatusOK, mapper.ToTreeViewResponse(view))
}

// Reposition resolves a drag gesture without mutating anything; the
// client applies the result through the move endpoint.
func (h *TreeHandler) Reposition(c *gin.Context) {
	lang := middleware.GetLang(c)
	draggedID, ok := pathID(c, lang)
	if !ok {
		return
	}

	var req dto.RepositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang))
		return
	}
	targetID := optionalID(&req.TargetID)
	if targetID == nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
		return
	}

	rep, err := h.treeService.ResolveReposition(
		c.Request.Context(),
		draggedID,
		*targetID,
		req.OffsetPx,
		optionalID(req.ZoneID),
		optionalID(req.FocusID),
	)
	if err != nil {
		respondDomainError(c, lang, err, "failed to resolve reposition")
		return
	}
	c.JSON(http.StatusOK, mapper.ToRepositionResponse(rep))
}
