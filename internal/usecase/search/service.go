// Package search implements the query evaluation pipeline:
// match and filter jointly select candidates, ranking orders them,
// pagination extracts the requested page.
package search

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/veritia/trustsearch/internal/domain/document"
	"github.com/veritia/trustsearch/internal/domain/search/request"
	"github.com/veritia/trustsearch/internal/domain/search/result"
	"github.com/veritia/trustsearch/internal/logger"
)

// Service runs searches against an injected read-only corpus.
type Service struct {
	corpus CorpusReader
}

// New creates a search service.
func New(corpus CorpusReader) *Service {
	return &Service{corpus: corpus}
}

// Search executes the full pipeline for a validated request. A request with
// zero matches yields an empty page, never an error; pages past the end
// yield an empty result slice with the true totals.
func (s *Service) Search(ctx context.Context, req *request.Request) (result.Page, error) {
	start := time.Now()

	docs := s.corpus.Documents()
	matched := make([]document.Doc, 0, len(docs))
	for i := range docs {
		d := &docs[i]
		if MatchesQuery(d, req.Query()) && SatisfiesFilters(d, req.Filters()) {
			matched = append(matched, docs[i])
		}
	}

	Rank(matched)

	total := len(matched)
	pageDocs := Paginate(matched, req.Page(), req.Limit())
	took := time.Since(start)

	logger.FromContext(ctx).Debug("search executed",
		zap.String("query", req.Query()),
		zap.Int("matches", total),
		zap.Int("page", req.Page()),
		zap.Duration("took", took),
	)

	return result.NewPage(
		pageDocs, total, req.Page(), TotalPages(total, req.Limit()),
		req.Query(), req.Filters(), took,
	), nil
}
