package search

import (
	"strings"

	"github.com/veritia/trustsearch/internal/domain/document"
	"github.com/veritia/trustsearch/internal/domain/search/filter"
)

// SatisfiesFilters reports whether the document meets every present
// constraint of the set (AND across constraint categories, OR within a
// list-valued constraint). Absent or empty constraints impose nothing.
// Pure function with no side effects.
func SatisfiesFilters(d *document.Doc, fs filter.Set) bool {
	if types := fs.SourceTypes(); len(types) > 0 {
		found := false
		for _, t := range types {
			if d.Source().Type() == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if types := fs.ContentTypes(); len(types) > 0 {
		found := false
		for _, t := range types {
			if d.ContentType() == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Topic constraints match as case-insensitive substrings of the
	// document's topics, so a filter of "warming" keeps "Global Warming".
	if topics := fs.Topics(); len(topics) > 0 && !topicsOverlap(d.Topics(), topics) {
		return false
	}

	// A date filter excludes documents with no published date.
	if dr := fs.DateRange(); dr != nil {
		published := d.PublishedDate()
		if published == nil || !dr.Contains(*published) {
			return false
		}
	}

	if minScore := fs.MinAuthorityScore(); minScore > 0 &&
		d.Source().AuthorityScore() < minScore {
		return false
	}

	return true
}

func topicsOverlap(docTopics, filterTopics []string) bool {
	for _, dt := range docTopics {
		lower := strings.ToLower(dt)
		for _, ft := range filterTopics {
			if strings.Contains(lower, strings.ToLower(ft)) {
				return true
			}
		}
	}
	return false
}
