package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/naviproai/navi-backend/internal/domain"
	"github.com/naviproai/navi-backend/internal/requestdata"
	"github.com/naviproai/navi-backend/internal/roadmap"
	"github.com/naviproai/navi-backend/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeRoadmapService returns canned values per method; nil values fall back
// to the paired error.
type fakeRoadmapService struct {
	doc     *domain.RoadmapDoc
	task    *services.DailyTask
	result  *services.CompletionResult
	summary *services.ProgressSummary
	err     error

	lastTaskID string
}

func (f *fakeRoadmapService) GenerateRoadmap(ctx context.Context, userID string, req roadmap.GenerationRequest) (*domain.RoadmapDoc, error) {
	return f.doc, f.err
}

func (f *fakeRoadmapService) GetUserRoadmap(ctx context.Context, userID string) (*domain.RoadmapDoc, error) {
	return f.doc, f.err
}

func (f *fakeRoadmapService) GetDailyTask(ctx context.Context, userID string) (*services.DailyTask, error) {
	return f.task, f.err
}

func (f *fakeRoadmapService) CompleteTask(ctx context.Context, userID, taskID string) (*services.CompletionResult, error) {
	f.lastTaskID = taskID
	return f.result, f.err
}

func (f *fakeRoadmapService) GetProgressSummary(ctx context.Context, userID string) (*services.ProgressSummary, error) {
	return f.summary, f.err
}

type fakeVideoService struct {
	videos *services.WeekVideos
	err    error
}

func (f *fakeVideoService) GetWeekVideos(ctx context.Context, userID string) (*services.WeekVideos, error) {
	return f.videos, f.err
}

type fakeChatService struct {
	reply *services.ChatReply
	err   error
}

func (f *fakeChatService) Chat(ctx context.Context, userID, message string) (*services.ChatReply, error) {
	return f.reply, f.err
}

// authenticated injects a fixed caller identity, standing in for the auth
// middleware.
func authenticated(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{
			UserID: userID,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (body=%s)", err, rec.Body.String())
	}
	return out
}
