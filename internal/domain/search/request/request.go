// Package request models a validated search request.
package request

import (
	"strings"

	"github.com/veritia/trustsearch/internal/domain"
	"github.com/veritia/trustsearch/internal/domain/search/filter"
)

// Request parameter limits. MaxQueryLength and the page-size bounds are the
// defaults; the configured values arrive through Limits.
const (
	MinQueryLength  = 1
	MaxQueryLength  = 500
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// Limits carries the configured request bounds.
type Limits struct {
	MaxQueryLength  int
	DefaultPageSize int
	MaxPageSize     int
}

// DefaultLimits returns the built-in request bounds.
func DefaultLimits() Limits {
	return Limits{
		MaxQueryLength:  MaxQueryLength,
		DefaultPageSize: DefaultPageSize,
		MaxPageSize:     MaxPageSize,
	}
}

// Request is a validated search request.
type Request struct {
	query   string
	page    int
	limit   int
	filters filter.Set
}

// New validates and normalizes a search request. The query is sanitized
// (injection characters stripped, whitespace collapsed) before length
// checks. Page defaults to 1 and limit to the configured page size when
// zero; explicit out-of-range values are rejected.
func New(query string, page, limit int, filters filter.Set, lim Limits) (Request, error) {
	if lim.MaxQueryLength <= 0 {
		lim = DefaultLimits()
	}

	query = Sanitize(query)
	if len(query) < MinQueryLength {
		return Request{}, domain.ErrMissingQuery
	}
	if len(query) > lim.MaxQueryLength {
		return Request{}, domain.ErrInvalidParameters
	}

	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = lim.DefaultPageSize
	}
	if page < 1 || limit < 1 || limit > lim.MaxPageSize {
		return Request{}, domain.ErrInvalidParameters
	}

	return Request{query: query, page: page, limit: limit, filters: filters}, nil
}

// Sanitize strips HTML/script-injection characters and collapses whitespace.
func Sanitize(query string) string {
	var b strings.Builder
	b.Grow(len(query))
	for _, r := range query {
		switch r {
		case '<', '>', '"', '\'', '&':
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Query returns the sanitized query text.
func (r *Request) Query() string { return r.query }

// Page returns the 1-based page number.
func (r *Request) Page() int { return r.page }

// Limit returns the page size.
func (r *Request) Limit() int { return r.limit }

// Filters returns the structured constraint set.
func (r *Request) Filters() filter.Set { return r.filters }
