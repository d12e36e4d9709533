package roadmap

import (
	"fmt"
	"regexp"
	"strings"
)

var trailingCommaRE = regexp.MustCompile(`,(\s*[}\]])`)

// SanitizeResponse extracts the JSON payload from raw model output. A fenced
// ```json block narrows the search window first; the payload is then the
// inclusive span from the first '{' to the last '}'.
func SanitizeResponse(raw string) (string, error) {
	if idx := strings.Index(raw, "```json"); idx >= 0 {
		rest := raw[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			raw = rest[:end]
		} else {
			raw = rest
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end < start {
		return "", fmt.Errorf("%w: raw=%s", ErrMalformedResponse, snippet(raw))
	}

	cleaned := raw[start : end+1]
	cleaned = trailingCommaRE.ReplaceAllString(cleaned, "$1")
	return strings.TrimSpace(cleaned), nil
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 200 {
		return s[:200]
	}
	return s
}
