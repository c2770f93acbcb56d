package search

import (
	"strings"

	"github.com/veritia/trustsearch/internal/domain/document"
)

// MatchesQuery reports whether the document is a candidate for the query:
// case-insensitive substring containment against, in order of cost, the
// title, the snippet, each topic, and the source display name. A hit on any
// one field is sufficient.
//
// This is a deliberate approximation of a real search engine: there is no
// tokenization, stemming, or fuzzy matching.
func MatchesQuery(d *document.Doc, query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return false
	}
	if strings.Contains(strings.ToLower(d.Title()), q) {
		return true
	}
	if strings.Contains(strings.ToLower(d.Snippet()), q) {
		return true
	}
	for _, topic := range d.Topics() {
		if strings.Contains(strings.ToLower(topic), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(d.Source().Name()), q)
}
