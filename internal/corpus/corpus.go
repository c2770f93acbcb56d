// Package corpus holds the static in-memory document collection.
//
// A Corpus is constructed once at startup and injected into every service;
// it is never mutated afterwards, so it is safe for unlimited concurrent
// reads without synchronization.
package corpus

import (
	"fmt"

	"github.com/veritia/trustsearch/internal/domain/document"
	"github.com/veritia/trustsearch/internal/domain/source"
	"github.com/veritia/trustsearch/internal/domain/suggestion"
)

// Corpus is a read-only collection of documents, their shared sources, and
// the autocomplete dictionary.
type Corpus struct {
	sources    []*source.Source
	documents  []document.Doc
	dictionary []suggestion.Entry
}

// New creates a Corpus. Every document must reference one of the supplied
// sources; document order is preserved (it is the ranking tie-breaker).
func New(
	sources []*source.Source,
	documents []document.Doc,
	dictionary []suggestion.Entry,
) (*Corpus, error) {
	known := make(map[*source.Source]bool, len(sources))
	for _, s := range sources {
		known[s] = true
	}
	for i := range documents {
		if !known[documents[i].Source()] {
			return nil, fmt.Errorf("document %q references an unregistered source",
				documents[i].ID())
		}
	}
	return &Corpus{
		sources:    sources,
		documents:  documents,
		dictionary: dictionary,
	}, nil
}

// Documents returns all documents in corpus order.
func (c *Corpus) Documents() []document.Doc { return c.documents }

// Sources returns the registered sources.
func (c *Corpus) Sources() []*source.Source { return c.sources }

// Dictionary returns the ordered suggestion dictionary.
func (c *Corpus) Dictionary() []suggestion.Entry { return c.dictionary }

// Size returns the number of documents.
func (c *Corpus) Size() int { return len(c.documents) }
