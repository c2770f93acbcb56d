// Package result models the paginated search result envelope.
package result

import (
	"time"

	"github.com/veritia/trustsearch/internal/domain/document"
	"github.com/veritia/trustsearch/internal/domain/search/filter"
)

// Page is one page of ranked search results plus the request echo.
type Page struct {
	results     []document.Doc
	totalCount  int
	currentPage int
	totalPages  int
	query       string
	filters     filter.Set
	took        time.Duration
}

// NewPage creates a result page. totalCount is the post-filter,
// pre-pagination match count.
func NewPage(
	results []document.Doc,
	totalCount, currentPage, totalPages int,
	query string,
	filters filter.Set,
	took time.Duration,
) Page {
	return Page{
		results:     results,
		totalCount:  totalCount,
		currentPage: currentPage,
		totalPages:  totalPages,
		query:       query,
		filters:     filters,
		took:        took,
	}
}

// Results returns the page-local documents in ranked order.
func (p *Page) Results() []document.Doc { return p.results }

// TotalCount returns the post-filter match count.
func (p *Page) TotalCount() int { return p.totalCount }

// CurrentPage returns the 1-based page number.
func (p *Page) CurrentPage() int { return p.currentPage }

// TotalPages returns ceil(totalCount / pageSize); 0 when nothing matched.
func (p *Page) TotalPages() int { return p.totalPages }

// Query returns the echoed query string.
func (p *Page) Query() string { return p.query }

// Filters returns the echoed constraint set.
func (p *Page) Filters() filter.Set { return p.filters }

// Took returns the measured pipeline execution time.
func (p *Page) Took() time.Duration { return p.took }
