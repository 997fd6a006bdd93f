// Package wordset recovers the per-category word lists a generation backend
// embeds in its free-form reply between BeginMarker and EndMarker.
//
// Parsing is purely syntactic: words are returned exactly as listed, without
// deduplication or filtering.
package wordset

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/articulate-words/internal/domain"
)

const (
	BeginMarker = "--BEGIN JSON--"
	EndMarker   = "--END JSON--"
)

// Response is the decoded payload of a backend reply.
type Response struct {
	Success bool
	Message string
	Words   domain.WordSet
}

type envelope struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message"`
	Data    map[string]json.RawMessage `json:"data"`
}

// noise is stripped from replies before the markers are located. Order
// matters: escaped newlines go before bare backslashes.
var noise = strings.NewReplacer(
	"\n", "",
	`\n`, "",
	"```json", "",
	"```", "",
	`\`, "",
)

// Clean removes newlines, escaped newlines, code fences and stray
// backslashes, then trims surrounding whitespace.
func Clean(raw string) string {
	return strings.TrimSpace(noise.Replace(raw))
}

// Parse extracts the word lists for all six categories from raw.
func Parse(raw string) (Response, error) {
	payload, err := extractPayload(Clean(raw))
	if err != nil {
		return Response{}, err
	}

	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return Response{}, fmt.Errorf("%w: decode payload: %v", domain.ErrMalformedResponse, err)
	}
	if env.Data == nil {
		return Response{}, fmt.Errorf("%w: data object missing", domain.ErrMalformedResponse)
	}

	words := make(domain.WordSet, len(env.Data))
	for _, c := range domain.Categories() {
		rawList, ok := env.Data[string(c)]
		if !ok {
			return Response{}, &domain.MissingCategoryError{Category: c}
		}
		list, err := decodeList(rawList)
		if err != nil {
			return Response{}, fmt.Errorf("%w: category %q: %v", domain.ErrMalformedResponse, c, err)
		}
		words[c] = list
	}

	// A renamed key reports the category it replaced, not the new name.
	for key := range env.Data {
		if !domain.Category(key).IsValid() {
			return Response{}, fmt.Errorf("%w: unexpected category %q in data", domain.ErrMalformedResponse, key)
		}
	}

	return Response{
		Success: env.Success,
		Message: env.Message,
		Words:   words,
	}, nil
}

// extractPayload returns the trimmed text between the first BeginMarker and
// the first EndMarker.
func extractPayload(s string) (string, error) {
	begin := strings.Index(s, BeginMarker)
	if begin == -1 {
		return "", fmt.Errorf("%w: %s marker not found", domain.ErrMalformedResponse, BeginMarker)
	}
	end := strings.Index(s, EndMarker)
	if end == -1 {
		return "", fmt.Errorf("%w: %s marker not found", domain.ErrMalformedResponse, EndMarker)
	}
	start := begin + len(BeginMarker)
	if end < start {
		return "", fmt.Errorf("%w: %s precedes %s", domain.ErrMalformedResponse, EndMarker, BeginMarker)
	}
	return strings.TrimSpace(s[start:end]), nil
}

// decodeList accepts only a JSON array of strings. A null value is rejected
// so a category can't silently come back empty.
func decodeList(raw json.RawMessage) ([]string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "[") {
		return nil, fmt.Errorf("expected an array of strings, got %s", truncate(trimmed, 40))
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
