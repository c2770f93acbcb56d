// Package suggest maps partial queries to autocomplete candidates.
package suggest

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/veritia/trustsearch/internal/domain"
)

// MinPartialLength is the floor below which no suggestions are returned.
// It is a floor, not an error: shorter input yields an empty set.
const MinPartialLength = 2

// Limit bounds for a suggestion request.
const (
	DefaultLimit = 5
	MaxLimit     = 20
)

// Service resolves suggestions from the static dictionary.
type Service struct {
	dict         DictionaryReader
	defaultLimit int
	maxLimit     int
}

// New creates a suggestion service. Zero limits fall back to the built-ins.
func New(dict DictionaryReader, defaultLimit, maxLimit int) *Service {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	return &Service{dict: dict, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// Suggest returns up to limit distinct completions for the partial query.
// One pass over the dictionary in entry order: an entry whose key the
// partial is a prefix of contributes all its completions; any other entry
// contributes only completions containing the partial as a substring.
// Lookups never fail for lack of matches; only an out-of-range limit is an
// error.
func (s *Service) Suggest(_ context.Context, partial string, limit int) ([]string, error) {
	if limit == 0 {
		limit = s.defaultLimit
	}
	if limit < 1 || limit > s.maxLimit {
		return nil, domain.ErrInvalidLimit
	}

	q := strings.ToLower(strings.TrimSpace(partial))
	if utf8.RuneCountInString(q) < MinPartialLength {
		return []string{}, nil
	}

	seen := make(map[string]bool)
	collected := make([]string, 0, limit)
	add := func(candidate string) {
		if !seen[candidate] {
			seen[candidate] = true
			collected = append(collected, candidate)
		}
	}

	for _, entry := range s.dict.Dictionary() {
		if strings.HasPrefix(entry.Key(), q) {
			for _, c := range entry.Completions() {
				add(c)
			}
			continue
		}
		for _, c := range entry.Completions() {
			if strings.Contains(strings.ToLower(c), q) {
				add(c)
			}
		}
	}

	if len(collected) > limit {
		collected = collected[:limit]
	}
	return collected, nil
}
