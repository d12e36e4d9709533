package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"github.com/naviproai/navi-backend/internal/clients/llm"
	"github.com/naviproai/navi-backend/internal/clients/youtube"
	"github.com/naviproai/navi-backend/internal/data/repos"
	"github.com/naviproai/navi-backend/internal/data/repos/testutil"
	"github.com/naviproai/navi-backend/internal/domain"
	"github.com/naviproai/navi-backend/internal/pkg/logger"
	"github.com/naviproai/navi-backend/internal/roadmap"
)

// fakeChat satisfies both the generator and chat client surfaces with
// scripted responses.
type fakeChat struct {
	completion    string
	completionErr error
	historyReply  string
	historyErr    error
	historyCalls  [][]llm.Message
}

func (f *fakeChat) ChatCompletion(ctx context.Context, system, user string) (string, error) {
	return f.completion, f.completionErr
}

func (f *fakeChat) ChatWithHistory(ctx context.Context, messages []llm.Message) (string, error) {
	f.historyCalls = append(f.historyCalls, messages)
	return f.historyReply, f.historyErr
}

type fakeYouTube struct {
	videos []youtube.Video
	calls  int
}

func (f *fakeYouTube) Search(ctx context.Context, query, targetRole string) []youtube.Video {
	f.calls++
	return f.videos
}

func (f *fakeYouTube) Configured() bool { return true }

type memoryCache struct {
	entries map[string][]youtube.Video
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]youtube.Video{}}
}

func (m *memoryCache) key(focus, role string) string { return focus + "|" + role }

func (m *memoryCache) Get(ctx context.Context, focus, targetRole string) ([]youtube.Video, bool) {
	videos, ok := m.entries[m.key(focus, targetRole)]
	return videos, ok
}

func (m *memoryCache) Set(ctx context.Context, focus, targetRole string, videos []youtube.Video) {
	m.entries[m.key(focus, targetRole)] = videos
}

func (m *memoryCache) Close() error { return nil }

var serviceWeekTopics = []string{
	"Go Syntax Essentials",
	"Structs and Interfaces",
	"Concurrency Patterns",
	"HTTP Services",
}

// validRoadmapJSON builds a model response that survives the full sanitize,
// parse, and validate pipeline for a 3 month timeframe.
func validRoadmapJSON(tb testing.TB) string {
	tb.Helper()
	doc := &domain.RoadmapDoc{}
	for m := 1; m <= 3; m++ {
		month := domain.Month{Month: m, MonthTitle: fmt.Sprintf("Milestone %d", m)}
		for w := 1; w <= domain.WeeksPerMonth; w++ {
			week := domain.Week{
				Week:       w,
				WeekNumber: w,
				Focus:      serviceWeekTopics[(w-1)%len(serviceWeekTopics)],
			}
			for d := 1; d <= domain.TasksPerWeek; d++ {
				week.DailyTasks = append(week.DailyTasks, domain.Task{
					Day:         d,
					Title:       fmt.Sprintf("Practice %s, part %d", week.Focus, d),
					Description: "Work through the exercises",
				})
			}
			month.Weeks = append(month.Weeks, week)
		}
		doc.Months = append(doc.Months, month)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		tb.Fatalf("marshal fixture: %v", err)
	}
	return string(raw)
}

type serviceDeps struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	roadmapRepo  repos.RoadmapRepo
	progressRepo repos.ProgressRepo
	chatRepo     repos.ChatRepo
}

func newServiceDeps(t *testing.T) *serviceDeps {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return &serviceDeps{
		db:           db,
		log:          log,
		userRepo:     repos.NewUserRepo(db, log),
		roadmapRepo:  repos.NewRoadmapRepo(db, log),
		progressRepo: repos.NewProgressRepo(db, log),
		chatRepo:     repos.NewChatRepo(db, log),
	}
}

// newTestRoadmapService wires a service against in-memory storage and the
// given scripted model.
func newTestRoadmapService(t *testing.T, chat *fakeChat) (RoadmapService, *serviceDeps) {
	t.Helper()
	deps := newServiceDeps(t)
	generator := roadmap.NewGenerator(chat, deps.log)
	svc := NewRoadmapService(deps.db, deps.log, generator, deps.userRepo, deps.roadmapRepo, deps.progressRepo)
	return svc, deps
}

func seedUserWithRoadmap(t *testing.T, svc RoadmapService, userID string) *domain.RoadmapDoc {
	t.Helper()
	doc, err := svc.GenerateRoadmap(context.Background(), userID, roadmap.GenerationRequest{
		Goal:       "become a backend developer",
		TargetRole: "Backend Developer",
		Timeframe:  domain.Timeframe3Months,
	})
	if err != nil {
		t.Fatalf("seed roadmap: %v", err)
	}
	return doc
}

func userFixture(userID string) *domain.User {
	return &domain.User{
		UserID:     userID,
		Goal:       "become a backend developer",
		TargetRole: "Backend Developer",
		Timeframe:  "3_months",
	}
}

func mustCompleteCurrent(t *testing.T, svc RoadmapService, userID string) *CompletionResult {
	t.Helper()
	result, err := svc.CompleteTask(context.Background(), userID, "")
	if err != nil {
		t.Fatalf("complete current task: %v", err)
	}
	return result
}
