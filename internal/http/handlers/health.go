package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/naviproai/navi-backend/internal/clients/youtube"
	"github.com/naviproai/navi-backend/internal/data/repos"
	"github.com/naviproai/navi-backend/internal/http/response"
)

type HealthHandler struct {
	userRepo      repos.UserRepo
	llmConfigured bool
	youtube       youtube.Client
}

func NewHealthHandler(userRepo repos.UserRepo, llmConfigured bool, yt youtube.Client) *HealthHandler {
	return &HealthHandler{
		userRepo:      userRepo,
		llmConfigured: llmConfigured,
		youtube:       yt,
	}
}

// GET /api/health
func (hh *HealthHandler) HealthCheck(c *gin.Context) {
	activeUsers, err := hh.userRepo.Count(c.Request.Context(), nil)
	if err != nil {
		activeUsers = 0
	}
	response.RespondOK(c, gin.H{
		"status":                  "healthy",
		"active_users":            activeUsers,
		"llm_configured":          hh.llmConfigured,
		"video_search_configured": hh.youtube != nil && hh.youtube.Configured(),
	})
}
