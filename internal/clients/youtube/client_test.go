package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/naviproai/navi-backend/internal/pkg/logger"
)

func testLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("init logger: %v", err)
	}
	return log
}

func TestSearchWithoutKeyServesSamples(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	c := NewClient(testLogger(t))

	if c.Configured() {
		t.Fatal("client should not report configured without a key")
	}
	videos := c.Search(context.Background(), "React Hooks", "Frontend Developer")
	if len(videos) != 2 {
		t.Fatalf("expected sample pair, got %d videos", len(videos))
	}
	if !strings.Contains(videos[0].Title, "React Hooks") {
		t.Fatalf("sample title not interpolated: %q", videos[0].Title)
	}
}

func TestSearchSortsByViewsAndCaps(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/search"):
			gotQuery = r.URL.Query().Get("q")
			items := make([]map[string]any, 8)
			for i := range items {
				items[i] = map[string]any{"id": map[string]any{"videoId": fmt.Sprintf("vid%d", i)}}
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"items": items})
		case strings.HasSuffix(r.URL.Path, "/videos"):
			items := make([]map[string]any, 8)
			for i := range items {
				items[i] = map[string]any{
					"id": fmt.Sprintf("vid%d", i),
					"snippet": map[string]any{
						"title":        fmt.Sprintf("Video %d", i),
						"channelTitle": "Some Channel",
					},
					"contentDetails": map[string]any{"duration": "PT10M"},
					"statistics":     map[string]any{"viewCount": fmt.Sprintf("%d", (i+1)*1000)},
				}
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"items": items})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("YOUTUBE_BASE_URL", server.URL)
	c := NewClient(testLogger(t))

	videos := c.Search(context.Background(), "React Hooks", "Frontend Developer")

	if gotQuery != "React Hooks Frontend Developer tutorial coding" {
		t.Fatalf("unexpected search query: %q", gotQuery)
	}
	if len(videos) != 6 {
		t.Fatalf("expected cap at 6 videos, got %d", len(videos))
	}
	if videos[0].Views != "8000" {
		t.Fatalf("not sorted by views desc: first=%q", videos[0].Views)
	}
	for i := 1; i < len(videos); i++ {
		var prev, cur int
		fmt.Sscanf(videos[i-1].Views, "%d", &prev)
		fmt.Sscanf(videos[i].Views, "%d", &cur)
		if cur > prev {
			t.Fatalf("views out of order at %d: %d > %d", i, cur, prev)
		}
	}
}

func TestSearchFailureFallsBackToSamples(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer server.Close()

	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("YOUTUBE_BASE_URL", server.URL)
	c := NewClient(testLogger(t))

	videos := c.Search(context.Background(), "Go Concurrency", "Backend Developer")
	if len(videos) != 2 {
		t.Fatalf("expected sample pair on failure, got %d", len(videos))
	}
	if videos[0].Channel != "Programming Tutorial" {
		t.Fatalf("unexpected fallback: %+v", videos[0])
	}
}
