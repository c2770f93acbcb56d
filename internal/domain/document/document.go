// Package document models a single indexed corpus entry.
package document

import (
	"fmt"
	"time"

	"github.com/veritia/trustsearch/internal/domain/source"
)

// ContentType is the category of a document's content.
type ContentType string

// Known content categories.
const (
	Article  ContentType = "article"
	Paper    ContentType = "paper"
	Document ContentType = "document"
	Page     ContentType = "page"
)

// ContentTypes lists every valid content category.
func ContentTypes() []ContentType {
	return []ContentType{Article, Paper, Document, Page}
}

// IsValid reports whether t is a known content category.
func (t ContentType) IsValid() bool {
	switch t {
	case Article, Paper, Document, Page:
		return true
	}
	return false
}

// Doc is an immutable corpus entry. The relevance score is precomputed for
// the static demonstration corpus; a live corpus would assign it per query.
type Doc struct {
	id             string
	title          string
	snippet        string
	url            string
	source         *source.Source
	relevanceScore float64
	publishedDate  *time.Time
	lastUpdated    time.Time
	topics         []string
	contentType    ContentType
}

// New validates and creates a Doc. The source reference is shared, never copied.
func New(
	id, title, snippet, url string,
	src *source.Source,
	relevanceScore float64,
	publishedDate *time.Time,
	lastUpdated time.Time,
	topics []string,
	contentType ContentType,
) (Doc, error) {
	if id == "" {
		return Doc{}, fmt.Errorf("document id is required")
	}
	if title == "" {
		return Doc{}, fmt.Errorf("document title is required for %q", id)
	}
	if src == nil {
		return Doc{}, fmt.Errorf("document %q has no source", id)
	}
	if relevanceScore < 0 || relevanceScore > 1 {
		return Doc{}, fmt.Errorf("relevance score for %q must be between 0 and 1", id)
	}
	if !contentType.IsValid() {
		return Doc{}, fmt.Errorf("unknown content type %q for %q", contentType, id)
	}
	if lastUpdated.IsZero() {
		return Doc{}, fmt.Errorf("document %q has no last-updated date", id)
	}
	return Doc{
		id:             id,
		title:          title,
		snippet:        snippet,
		url:            url,
		source:         src,
		relevanceScore: relevanceScore,
		publishedDate:  publishedDate,
		lastUpdated:    lastUpdated,
		topics:         topics,
		contentType:    contentType,
	}, nil
}

// ID returns the document identifier.
func (d *Doc) ID() string { return d.id }

// Title returns the document title.
func (d *Doc) Title() string { return d.title }

// Snippet returns the short display excerpt.
func (d *Doc) Snippet() string { return d.snippet }

// URL returns the canonical document URL.
func (d *Doc) URL() string { return d.url }

// Source returns the shared source reference.
func (d *Doc) Source() *source.Source { return d.source }

// RelevanceScore returns the precomputed ranking signal.
func (d *Doc) RelevanceScore() float64 { return d.relevanceScore }

// PublishedDate returns the publication date, nil if unknown.
func (d *Doc) PublishedDate() *time.Time { return d.publishedDate }

// LastUpdated returns the last revision date.
func (d *Doc) LastUpdated() time.Time { return d.lastUpdated }

// Topics returns the ordered topic labels.
func (d *Doc) Topics() []string { return d.topics }

// ContentType returns the content category.
func (d *Doc) ContentType() ContentType { return d.contentType }
