// Package jsonx extracts JSON payloads from model completions.
// Models wrap answers in code fences, prose, or both; extraction scans for
// balanced objects and arrays and keeps the first candidate that decodes.
package jsonx

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when no valid JSON object or array exists in the text.
var ErrNoJSON = errors.New("no valid JSON object or array found")

var reFence = regexp.MustCompile("```(?:json)?\\s*")

// Extract returns the first valid JSON object or array embedded in text.
// Code fences are stripped first, then balanced {...} candidates are tried,
// then balanced [...] candidates, then the whole text.
func Extract(text string) (string, error) {
	text = strings.TrimSpace(reFence.ReplaceAllString(text, ""))

	candidates := scanBalanced(text, '{', '}')
	candidates = append(candidates, scanBalanced(text, '[', ']')...)

	for _, c := range candidates {
		if json.Valid([]byte(c)) {
			return c, nil
		}
	}

	if json.Valid([]byte(text)) && text != "" {
		return text, nil
	}
	return "", ErrNoJSON
}

// scanBalanced collects top-level substrings delimited by the given pair.
// Nesting is tracked by depth only; delimiters inside JSON strings can
// produce false candidates, which json.Valid then rejects.
func scanBalanced(text string, open, close byte) []string {
	var candidates []string
	depth := 0
	start := -1

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case open:
			if depth == 0 {
				start = i
			}
			depth++
		case close:
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start != -1 {
				candidates = append(candidates, text[start:i+1])
				start = -1
			}
		}
	}
	return candidates
}
