package gap

import (
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseAnalysis extracts and validates the structured payload from a raw
// provider response. Providers routinely wrap JSON in code fences or
// leading prose, so the parser hunts for the embedded object instead of
// trusting the envelope. Any violation maps to ErrUpstream.
func ParseAnalysis(raw string) (Analysis, error) {
	payload := extractJSON(raw)
	if payload == "" || !gjson.Valid(payload) {
		return Analysis{}, fmt.Errorf("%w: no JSON object in response", ErrUpstream)
	}

	score := gjson.Get(payload, "score")
	if !score.Exists() || score.Type != gjson.Number {
		return Analysis{}, fmt.Errorf("%w: score missing or not numeric", ErrUpstream)
	}
	scoreFloat := score.Float()
	if scoreFloat < 0 || scoreFloat > 100 {
		return Analysis{}, fmt.Errorf("%w: score out of range: %s", ErrUpstream, score.Raw)
	}
	// Providers occasionally return fractional scores; round rather than
	// fail the whole analysis.
	scoreVal := int(math.Round(scoreFloat))

	feedback := strings.TrimSpace(gjson.Get(payload, "feedback").String())
	if feedback == "" {
		return Analysis{}, fmt.Errorf("%w: feedback missing", ErrUpstream)
	}

	keywordsField := gjson.Get(payload, "missingKeywords")
	if keywordsField.Exists() && !keywordsField.IsArray() {
		return Analysis{}, fmt.Errorf("%w: missingKeywords is not an array", ErrUpstream)
	}
	keywords := []string{}
	seen := map[string]bool{}
	var badType bool
	keywordsField.ForEach(func(_, value gjson.Result) bool {
		if value.Type != gjson.String {
			badType = true
			return false
		}
		kw := strings.TrimSpace(value.String())
		key := strings.ToLower(kw)
		if kw == "" || seen[key] {
			return true
		}
		seen[key] = true
		keywords = append(keywords, kw)
		return true
	})
	if badType {
		return Analysis{}, fmt.Errorf("%w: missingKeywords contains a non-string entry", ErrUpstream)
	}

	return Analysis{
		Score:           scoreVal,
		Feedback:        feedback,
		MissingKeywords: keywords,
	}, nil
}

// extractJSON returns the first top-level JSON object embedded in s,
// tolerating fences and surrounding prose.
func extractJSON(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
