package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/naviproai/navi-backend/internal/clients/youtube"
	"github.com/naviproai/navi-backend/internal/services"
)

func TestGetWeekVideosEndpoint(t *testing.T) {
	t.Parallel()

	svc := &fakeVideoService{videos: &services.WeekVideos{
		WeekFocus:   "Go Syntax Essentials",
		WeekInfo:    "Month 1, Week 1",
		Videos:      []youtube.Video{{Title: "Go Crash Course"}},
		TotalVideos: 1,
	}}
	r := gin.New()
	r.Use(authenticated("ext-user-1"))
	r.GET("/api/week_videos", NewVideoHandler(svc).GetWeekVideos)

	rec := doJSON(t, r, http.MethodGet, "/api/week_videos", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["week_focus"] != "Go Syntax Essentials" || body["total_videos"] != float64(1) {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestGetWeekVideosNoCurrentWeek(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(authenticated("ext-user-1"))
	r.GET("/api/week_videos", NewVideoHandler(&fakeVideoService{err: services.ErrWeekNotFound}).GetWeekVideos)

	rec := doJSON(t, r, http.MethodGet, "/api/week_videos", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestChatEndpoint(t *testing.T) {
	t.Parallel()

	svc := &fakeChatService{reply: &services.ChatReply{
		Response:  "Try breaking the problem into smaller pieces.",
		Timestamp: "2026-03-01T10:00:00Z",
	}}
	r := gin.New()
	r.Use(authenticated("ext-user-1"))
	r.POST("/api/chat", NewChatHandler(svc).Chat)

	rec := doJSON(t, r, http.MethodPost, "/api/chat", `{"message": "I'm stuck"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["response"] != "Try breaking the problem into smaller pieces." {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestChatEndpointRequiresMessage(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(authenticated("ext-user-1"))
	r.POST("/api/chat", NewChatHandler(&fakeChatService{}).Chat)

	rec := doJSON(t, r, http.MethodPost, "/api/chat", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetUserProgressEndpoint(t *testing.T) {
	t.Parallel()

	svc := &fakeRoadmapService{summary: &services.ProgressSummary{
		Goal:                 "learn go",
		TotalTasks:           72,
		CompletedTasks:       1,
		CompletionPercentage: 1.4,
		CurrentMonth:         1,
		CurrentWeek:          1,
		CurrentDay:           2,
	}}
	r := gin.New()
	r.Use(authenticated("ext-user-1"))
	r.GET("/api/user_progress", NewProgressHandler(svc).GetUserProgress)

	rec := doJSON(t, r, http.MethodGet, "/api/user_progress", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["total_tasks"] != float64(72) || body["completion_percentage"] != 1.4 {
		t.Fatalf("unexpected body: %v", body)
	}
}
