package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naviproai/navi-backend/internal/http/response"
	"github.com/naviproai/navi-backend/internal/services"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// POST /api/chat
// body: { "message": "..." }
func (ch *ChatHandler) Chat(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	reply, err := ch.chatService.Chat(c.Request.Context(), userID, req.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, reply)
}
