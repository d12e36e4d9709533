package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/naviproai/navi-backend/internal/domain"
)

func TestChatRepliesAndPersistsTurn(t *testing.T) {
	deps := newServiceDeps(t)
	ctx := context.Background()

	if _, err := deps.userRepo.Create(ctx, nil, userFixture("ext-user-1")); err != nil {
		t.Fatalf("create user: %v", err)
	}

	chat := &fakeChat{historyReply: "Keep at it, SQL joins click after a few reps."}
	svc := NewChatService(deps.log, chat, deps.userRepo, deps.progressRepo, deps.chatRepo)

	reply, err := svc.Chat(ctx, "ext-user-1", "I'm stuck on SQL joins")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply.Response != "Keep at it, SQL joins click after a few reps." {
		t.Fatalf("unexpected reply: %q", reply.Response)
	}
	if reply.Timestamp == "" {
		t.Fatal("missing timestamp")
	}

	turns, err := deps.chatRepo.GetRecent(ctx, nil, "ext-user-1", 6)
	if err != nil {
		t.Fatalf("get recent: %v", err)
	}
	if len(turns) != 1 || turns[0].UserMessage != "I'm stuck on SQL joins" {
		t.Fatalf("turn not persisted: %+v", turns)
	}
}

func TestChatBuildsContextFromHistoryAndProgress(t *testing.T) {
	deps := newServiceDeps(t)
	ctx := context.Background()

	if _, err := deps.userRepo.Create(ctx, nil, userFixture("ext-user-1")); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := deps.progressRepo.Create(ctx, nil, &domain.Progress{
		ID:                  uuid.New(),
		UserID:              "ext-user-1",
		CurrentDay:          3,
		CurrentWeek:         1,
		CurrentMonth:        1,
		TotalTasksCompleted: 2,
		StartDate:           time.Now(),
	}); err != nil {
		t.Fatalf("create progress: %v", err)
	}

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		_, err := deps.chatRepo.Append(ctx, nil, &domain.ChatTurn{
			ID:                uuid.New(),
			UserID:            "ext-user-1",
			UserMessage:       fmt.Sprintf("question %d", i),
			AssistantResponse: fmt.Sprintf("answer %d", i),
			Timestamp:         base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	chat := &fakeChat{historyReply: "ok"}
	svc := NewChatService(deps.log, chat, deps.userRepo, deps.progressRepo, deps.chatRepo)

	if _, err := svc.Chat(ctx, "ext-user-1", "what's next?"); err != nil {
		t.Fatalf("chat: %v", err)
	}

	if len(chat.historyCalls) != 1 {
		t.Fatalf("expected one model call, got %d", len(chat.historyCalls))
	}
	messages := chat.historyCalls[0]
	// system + 6 history pairs + current message.
	if len(messages) != 1+6*2+1 {
		t.Fatalf("unexpected message count: %d", len(messages))
	}
	if messages[0].Role != "system" || !strings.Contains(messages[0].Content, "become a backend developer") {
		t.Fatalf("system prompt missing goal: %q", messages[0].Content)
	}
	if !strings.Contains(messages[0].Content, "Tasks Completed: 2") {
		t.Fatalf("system prompt missing progress: %q", messages[0].Content)
	}
	// History window is the newest 6, oldest first.
	if messages[1].Content != "question 2" {
		t.Fatalf("unexpected first history message: %q", messages[1].Content)
	}
	if messages[len(messages)-1].Content != "what's next?" {
		t.Fatalf("current message missing: %q", messages[len(messages)-1].Content)
	}
}

func TestChatDegradesOnModelFailure(t *testing.T) {
	deps := newServiceDeps(t)
	ctx := context.Background()

	if _, err := deps.userRepo.Create(ctx, nil, userFixture("ext-user-1")); err != nil {
		t.Fatalf("create user: %v", err)
	}

	chat := &fakeChat{historyErr: errors.New("upstream down")}
	svc := NewChatService(deps.log, chat, deps.userRepo, deps.progressRepo, deps.chatRepo)

	reply, err := svc.Chat(ctx, "ext-user-1", "hello")
	if err != nil {
		t.Fatalf("chat should degrade, not fail: %v", err)
	}
	if reply.Response != chatUnavailableMessage {
		t.Fatalf("unexpected reply: %q", reply.Response)
	}

	// Failed exchanges are not persisted.
	turns, err := deps.chatRepo.GetRecent(ctx, nil, "ext-user-1", 6)
	if err != nil {
		t.Fatalf("get recent: %v", err)
	}
	if len(turns) != 0 {
		t.Fatalf("failed turn persisted: %+v", turns)
	}
}

func TestChatUnknownUser(t *testing.T) {
	deps := newServiceDeps(t)
	svc := NewChatService(deps.log, &fakeChat{}, deps.userRepo, deps.progressRepo, deps.chatRepo)

	_, err := svc.Chat(context.Background(), "nobody", "hi")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
