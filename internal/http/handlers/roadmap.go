package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naviproai/navi-backend/internal/http/response"
	"github.com/naviproai/navi-backend/internal/roadmap"
	"github.com/naviproai/navi-backend/internal/services"
)

type RoadmapHandler struct {
	roadmapService services.RoadmapService
}

func NewRoadmapHandler(roadmapService services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{roadmapService: roadmapService}
}

// POST /api/generate_roadmap
func (rh *RoadmapHandler) GenerateRoadmap(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	var req roadmap.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	doc, err := rh.roadmapService.GenerateRoadmap(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success": true,
		"user_id": userID,
		"roadmap": doc,
		"message": "Roadmap generated successfully!",
	})
}

// GET /api/user_roadmap
func (rh *RoadmapHandler) GetUserRoadmap(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	doc, err := rh.roadmapService.GetUserRoadmap(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, doc)
}
