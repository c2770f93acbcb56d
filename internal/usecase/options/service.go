// Package options derives the selectable filter values from the corpus.
package options

import (
	"context"
	"sort"
	"time"

	"github.com/veritia/trustsearch/internal/domain/document"
	"github.com/veritia/trustsearch/internal/domain/search/options"
	"github.com/veritia/trustsearch/internal/domain/source"
)

// defaultDateMin is the fallback lower bound when no document carries a
// published date.
var defaultDateMin = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Service derives filter options with a single corpus scan per call.
type Service struct {
	corpus CorpusReader
}

// New creates a filter-options service.
func New(corpus CorpusReader) *Service {
	return &Service{corpus: corpus}
}

// Options returns the current snapshot: observed source and content
// categories in first-seen order, deduplicated sorted topics, and the
// min/max published date (falling back to [2000-01-01, now] when no
// document has one).
func (s *Service) Options(_ context.Context) options.Options {
	var sourceTypes []source.Type
	seenSource := make(map[source.Type]bool)
	for _, src := range s.corpus.Sources() {
		if !seenSource[src.Type()] {
			seenSource[src.Type()] = true
			sourceTypes = append(sourceTypes, src.Type())
		}
	}

	var contentTypes []document.ContentType
	seenContent := make(map[document.ContentType]bool)
	seenTopic := make(map[string]bool)
	var topics []string
	var dateMin, dateMax time.Time

	docs := s.corpus.Documents()
	for i := range docs {
		d := &docs[i]
		if !seenContent[d.ContentType()] {
			seenContent[d.ContentType()] = true
			contentTypes = append(contentTypes, d.ContentType())
		}
		for _, t := range d.Topics() {
			if !seenTopic[t] {
				seenTopic[t] = true
				topics = append(topics, t)
			}
		}
		if published := d.PublishedDate(); published != nil {
			if dateMin.IsZero() || published.Before(dateMin) {
				dateMin = *published
			}
			if dateMax.IsZero() || published.After(dateMax) {
				dateMax = *published
			}
		}
	}
	sort.Strings(topics)

	if dateMin.IsZero() {
		dateMin = defaultDateMin
		dateMax = time.Now().UTC()
	}

	return options.New(sourceTypes, contentTypes, topics, dateMin, dateMax)
}
