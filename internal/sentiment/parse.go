package sentiment

import (
	"regexp"
	"strconv"
	"strings"
)

// FallbackExplanation is returned when the classifier reply carries no
// bracketed explanation.
const FallbackExplanation = "No explanation provided."

var scorePattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// ParseScore extracts the first signed decimal number from a classifier
// reply. The classifier is trusted but not validated: values outside
// [-1, 1] are returned as-is. Returns (0, false) when no number is found.
func ParseScore(raw string) (float64, bool) {
	match := scorePattern.FindString(raw)
	if match == "" {
		return 0, false
	}
	score, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return score, true
}

// ParseExplanation extracts the text between the first '[' and the first
// ']' after it. Total over arbitrary input: missing brackets yield
// FallbackExplanation.
func ParseExplanation(raw string) string {
	start := strings.IndexByte(raw, '[')
	if start < 0 {
		return FallbackExplanation
	}
	rest := raw[start+1:]
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return FallbackExplanation
	}
	return strings.TrimSpace(rest[:end])
}
