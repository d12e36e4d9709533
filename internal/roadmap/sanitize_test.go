package roadmap

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeResponseStripsFence(t *testing.T) {
	t.Parallel()

	raw := "Here is your roadmap:\n```json\n{\"goal\": \"learn go\"}\n```\nGood luck!"
	got, err := SanitizeResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"goal": "learn go"}` {
		t.Fatalf("unexpected payload: %q", got)
	}
}

func TestSanitizeResponseUnterminatedFence(t *testing.T) {
	t.Parallel()

	raw := "```json\n{\"goal\": \"learn go\"}"
	got, err := SanitizeResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"goal": "learn go"}` {
		t.Fatalf("unexpected payload: %q", got)
	}
}

func TestSanitizeResponseBraceSpan(t *testing.T) {
	t.Parallel()

	raw := "<think>planning...</think> {\"a\": {\"b\": 1}} trailing prose"
	got, err := SanitizeResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"a": {"b": 1}}` {
		t.Fatalf("unexpected payload: %q", got)
	}
}

func TestSanitizeResponseStripsTrailingCommas(t *testing.T) {
	t.Parallel()

	got, err := SanitizeResponse(`{"a": [1, 2,], "b": 3,}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, ",]") || strings.Contains(got, ",}") {
		t.Fatalf("trailing commas survived: %q", got)
	}
}

func TestSanitizeResponseNoBraces(t *testing.T) {
	t.Parallel()

	_, err := SanitizeResponse("sorry, I cannot help with that")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}
