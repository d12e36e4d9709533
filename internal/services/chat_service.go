package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/naviproai/navi-backend/internal/clients/llm"
	"github.com/naviproai/navi-backend/internal/data/repos"
	"github.com/naviproai/navi-backend/internal/domain"
	"github.com/naviproai/navi-backend/internal/pkg/logger"
)

// chatHistoryLimit caps how many prior turns are replayed into the model
// context to stay within token limits.
const chatHistoryLimit = 6

const chatUnavailableMessage = "I'm having trouble connecting right now. Please try again in a moment!"

const chatSystemPromptTemplate = `You are Navi, a helpful career mentor AI assistant.

Context about the user:
- Career Goal: %s
- Tasks Completed: %d
- Learning Journey: Currently working on their %s roadmap

Your role:
1. Answer questions about %s, career development, and learning
2. Provide encouragement and motivation
3. Give practical advice based on their goal
4. Keep responses conversational and supportive
5. If asked about progress, reference their completed tasks

Guidelines:
- Clarity first: write in plain, direct language; avoid fluff or vague filler.
- Concise sentences: break long thoughts into smaller sentences for readability.
- Logical flow: ideas move step by step from context to details to closing.
- Active voice: prefer "You can do this" over "This can be done."
- One idea per paragraph so the response is easy to scan.
- Encouraging, but not sugary: direct encouragement without over-the-top praise.
- Forward-looking: point toward solutions or next steps.
- Examples over abstractions: explain with real or simple examples.
- Suggest 2-3 paths forward instead of dumping everything at once.
- Adapt length to the request: short and sharp if quick, detailed if deep dive.
- Action-oriented: end with a clear direction.
- DO NOT USE MARKDOWN TEXT FORMAT`

// ChatReply is a single assistant response with its server-side timestamp.
type ChatReply struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

type ChatService interface {
	Chat(ctx context.Context, userID, message string) (*ChatReply, error)
}

type chatService struct {
	log          *logger.Logger
	llm          llm.Client
	userRepo     repos.UserRepo
	progressRepo repos.ProgressRepo
	chatRepo     repos.ChatRepo
}

func NewChatService(
	baseLog *logger.Logger,
	llmClient llm.Client,
	userRepo repos.UserRepo,
	progressRepo repos.ProgressRepo,
	chatRepo repos.ChatRepo,
) ChatService {
	return &chatService{
		log:          baseLog.With("service", "ChatService"),
		llm:          llmClient,
		userRepo:     userRepo,
		progressRepo: progressRepo,
		chatRepo:     chatRepo,
	}
}

// Chat answers the message with the user's goal, progress, and recent turns
// as model context. Upstream failures degrade to a canned apology and that
// exchange is not persisted.
func (cs *chatService) Chat(ctx context.Context, userID, message string) (*ChatReply, error) {
	user, err := cs.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	totalCompleted := 0
	progress, err := cs.progressRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if progress != nil {
		totalCompleted = progress.TotalTasksCompleted
	}

	history, err := cs.chatRepo.GetRecent(ctx, nil, userID, chatHistoryLimit)
	if err != nil {
		return nil, err
	}

	systemPrompt := fmt.Sprintf(chatSystemPromptTemplate,
		user.Goal, totalCompleted, user.TargetRole, user.TargetRole)

	messages := make([]llm.Message, 0, 2*len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: systemPrompt})
	for _, turn := range history {
		messages = append(messages,
			llm.Message{Role: "user", Content: turn.UserMessage},
			llm.Message{Role: "assistant", Content: turn.AssistantResponse},
		)
	}
	messages = append(messages, llm.Message{Role: "user", Content: message})

	now := time.Now()
	if cs.llm == nil {
		return &ChatReply{
			Response:  chatUnavailableMessage,
			Timestamp: now.Format(time.RFC3339),
		}, nil
	}
	response, err := cs.llm.ChatWithHistory(ctx, messages)
	if err != nil {
		cs.log.Warn("Chat completion failed", "user_id", userID, "error", err)
		return &ChatReply{
			Response:  chatUnavailableMessage,
			Timestamp: now.Format(time.RFC3339),
		}, nil
	}

	if _, err := cs.chatRepo.Append(ctx, nil, &domain.ChatTurn{
		ID:                uuid.New(),
		UserID:            userID,
		UserMessage:       message,
		AssistantResponse: response,
		Timestamp:         now,
	}); err != nil {
		cs.log.Error("Failed to persist chat turn", "user_id", userID, "error", err)
	}

	return &ChatReply{
		Response:  response,
		Timestamp: now.Format(time.RFC3339),
	}, nil
}
