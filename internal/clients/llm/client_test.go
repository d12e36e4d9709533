package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
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

func newTestClient(t *testing.T, serverURL string) Client {
	t.Helper()
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GROQ_BASE_URL", serverURL)
	t.Setenv("GROQ_MAX_RETRIES", "2")
	c, err := NewClient(testLogger(t))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func completionBody(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	if _, err := NewClient(testLogger(t)); err == nil {
		t.Fatal("expected error without GROQ_API_KEY")
	}
}

func TestChatCompletionSendsSystemAndUser(t *testing.T) {
	var gotReq chatCompletionsRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer token: %q", r.Header.Get("Authorization"))
		}
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(completionBody("{\"roadmap\": []}"))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	out, err := c.ChatCompletion(context.Background(), "system prompt", "user prompt")
	if err != nil {
		t.Fatalf("chat completion: %v", err)
	}
	if out != "{\"roadmap\": []}" {
		t.Fatalf("unexpected content: %q", out)
	}

	if len(gotReq.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Fatalf("unexpected roles: %+v", gotReq.Messages)
	}
	if gotReq.Temperature != 1 || gotReq.MaxTokens != 20000 {
		t.Fatalf("unexpected sampling params: temp=%v max_tokens=%d", gotReq.Temperature, gotReq.MaxTokens)
	}
}

func TestChatWithHistoryUsesChatModel(t *testing.T) {
	t.Setenv("GROQ_CHAT_MODEL", "chat-model-x")
	var gotReq chatCompletionsRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(completionBody("sure thing"))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	out, err := c.ChatWithHistory(context.Background(), []Message{
		{Role: "system", Content: "be helpful"},
		{Role: "user", Content: "hello"},
	})
	if err != nil {
		t.Fatalf("chat with history: %v", err)
	}
	if out != "sure thing" {
		t.Fatalf("unexpected content: %q", out)
	}
	if gotReq.Model != "chat-model-x" {
		t.Fatalf("unexpected model: %q", gotReq.Model)
	}
}

func TestChatCompletionRetriesOn429(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(completionBody("recovered"))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	out, err := c.ChatCompletion(context.Background(), "s", "u")
	if err != nil {
		t.Fatalf("expected retry to recover: %v", err)
	}
	if out != "recovered" || calls.Load() != 2 {
		t.Fatalf("unexpected outcome: out=%q calls=%d", out, calls.Load())
	}
}

func TestChatCompletionDoesNotRetryOn400(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	if _, err := c.ChatCompletion(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error on 400")
	}
	if calls.Load() != 1 {
		t.Fatalf("client retried a 400: calls=%d", calls.Load())
	}
}
