package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"focusflow/internal/core/domain"
	"focusflow/pkg/apierrors"
)

// respondDomainError maps an engine error onto the translated JSON error
// body. Anything unrecognized is logged and reported as a 500.
func respondDomainError(c *gin.Context, lang string, err error, logMsg string) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang))
	case errors.Is(err, domain.ErrZoneNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgZoneNotFound, lang))
	case errors.Is(err, domain.ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgTemplateNotFound, lang))
	case errors.Is(err, domain.ErrHierarchyCycle):
		c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgHierarchyCycle, lang))
	case errors.Is(err, domain.ErrInvalidSnapshot):
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSnapshot, lang))
	default:
		zap.L().Error(logMsg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang))
	}
}

// pathID parses the :id route parameter; on failure it writes the 400
// response and reports false.
func pathID(c *gin.Context, lang string) (uuid.UUID, bool) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
		return uuid.Nil, false
	}
	return id, true
}

// queryID parses an optional uuid query parameter. ok is false only when
// the parameter is present but malformed.
func queryID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw, exists := c.GetQuery(name)
	if !exists || raw == "" {
		return nil, true
	}
	id, err := uuid.FromString(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

func optionalID(raw *string) *uuid.UUID {
	if raw == nil {
		return nil
	}
	if id, err := uuid.FromString(*raw); err == nil {
		return &id
	}
	return nil
}
