package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naviproai/navi-backend/internal/http/response"
	"github.com/naviproai/navi-backend/internal/services"
)

type TaskHandler struct {
	roadmapService services.RoadmapService
}

func NewTaskHandler(roadmapService services.RoadmapService) *TaskHandler {
	return &TaskHandler{roadmapService: roadmapService}
}

// GET /api/daily_task
func (th *TaskHandler) GetDailyTask(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	task, err := th.roadmapService.GetDailyTask(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if task == nil {
		response.RespondOK(c, gin.H{"message": "All tasks completed! 🎉"})
		return
	}
	response.RespondOK(c, task)
}

// POST /api/complete_task
// body: { "task_completed": true, "task_id": "m1_w1_d1" } (task_id optional)
func (th *TaskHandler) CompleteTask(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	var req struct {
		TaskCompleted bool   `json:"task_completed"`
		TaskID        string `json:"task_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	result, err := th.roadmapService.CompleteTask(c.Request.Context(), userID, req.TaskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}
