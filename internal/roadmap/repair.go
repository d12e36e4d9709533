package roadmap

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/naviproai/navi-backend/internal/domain"
)

var bareKeyRE = regexp.MustCompile(`([{,]\s*)(\w+)(:)`)

// ParseLenient parses s into a roadmap document. A strict parse is attempted
// first; on failure the common LLM syntax slips are repaired (single-quoted
// strings, trailing commas, unquoted keys) and the parse is retried once.
// Repairs are purely syntactic.
func ParseLenient(s string) (*domain.RoadmapDoc, error) {
	var doc domain.RoadmapDoc
	strictErr := json.Unmarshal([]byte(s), &doc)
	if strictErr == nil {
		return &doc, nil
	}

	fixed := replaceUnescapedSingleQuotes(s)
	fixed = trailingCommaRE.ReplaceAllString(fixed, "$1")
	fixed = bareKeyRE.ReplaceAllString(fixed, `$1"$2"$3`)

	doc = domain.RoadmapDoc{}
	if err := json.Unmarshal([]byte(fixed), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v; text=%s", ErrUnparsableResponse, strictErr, snippet(s))
	}
	return &doc, nil
}

// replaceUnescapedSingleQuotes swaps ' for " unless the quote is escaped.
func replaceUnescapedSingleQuotes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' && (i == 0 || s[i-1] != '\\') {
			out = append(out, '"')
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
