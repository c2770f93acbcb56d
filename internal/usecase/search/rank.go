package search

import (
	"sort"

	"github.com/veritia/trustsearch/internal/domain/document"
)

// Rank orders documents by relevance score, descending, in place. The sort
// is stable on purpose: ties keep their corpus order, and many corpus
// documents carry close scores.
func Rank(docs []document.Doc) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].RelevanceScore() > docs[j].RelevanceScore()
	})
}
