package search

import "github.com/veritia/trustsearch/internal/domain/document"

// CorpusReader provides the documents the pipeline runs over. The returned
// slice is read-only shared state; corpus order is the ranking tie-breaker.
type CorpusReader interface {
	Documents() []document.Doc
}
