package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naviproai/navi-backend/internal/http/response"
	"github.com/naviproai/navi-backend/internal/requestdata"
	"github.com/naviproai/navi-backend/internal/services"
)

// currentUserID pulls the authenticated caller from the request context.
// Returns "" after writing a 401 when the context carries no identity.
func currentUserID(c *gin.Context) string {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing authenticated user"))
		return ""
	}
	return rd.UserID
}

// respondServiceError maps the service sentinels onto HTTP statuses. Anything
// unrecognized is a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrRoadmapNotFound),
		errors.Is(err, services.ErrProgressNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrWeekNotFound):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, services.ErrNoCurrentTask):
		response.RespondError(c, http.StatusNotFound, "no_current_task", err)
	case errors.Is(err, services.ErrUserExists):
		response.RespondError(c, http.StatusBadRequest, "duplicate_user", err)
	default:
		response.RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
