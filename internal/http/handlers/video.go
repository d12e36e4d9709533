package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/naviproai/navi-backend/internal/http/response"
	"github.com/naviproai/navi-backend/internal/services"
)

type VideoHandler struct {
	videoService services.VideoService
}

func NewVideoHandler(videoService services.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// GET /api/week_videos
func (vh *VideoHandler) GetWeekVideos(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	videos, err := vh.videoService.GetWeekVideos(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, videos)
}
