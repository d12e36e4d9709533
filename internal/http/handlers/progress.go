package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/naviproai/navi-backend/internal/http/response"
	"github.com/naviproai/navi-backend/internal/services"
)

type ProgressHandler struct {
	roadmapService services.RoadmapService
}

func NewProgressHandler(roadmapService services.RoadmapService) *ProgressHandler {
	return &ProgressHandler{roadmapService: roadmapService}
}

// GET /api/user_progress
func (ph *ProgressHandler) GetUserProgress(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	summary, err := ph.roadmapService.GetProgressSummary(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, summary)
}
