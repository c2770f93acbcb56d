// Package options models the enumerable universe of filter values.
package options

import (
	"time"

	"github.com/veritia/trustsearch/internal/domain/document"
	"github.com/veritia/trustsearch/internal/domain/source"
)

// Options is a snapshot of the selectable filter values derived from the
// corpus: the observed source and content categories, the deduplicated
// sorted topic list, and the published-date bounds.
type Options struct {
	sourceTypes  []source.Type
	contentTypes []document.ContentType
	topics       []string
	dateMin      time.Time
	dateMax      time.Time
}

// New creates an Options snapshot.
func New(
	sourceTypes []source.Type,
	contentTypes []document.ContentType,
	topics []string,
	dateMin, dateMax time.Time,
) Options {
	return Options{
		sourceTypes:  sourceTypes,
		contentTypes: contentTypes,
		topics:       topics,
		dateMin:      dateMin,
		dateMax:      dateMax,
	}
}

// SourceTypes returns the source categories present in the corpus.
func (o *Options) SourceTypes() []source.Type { return o.sourceTypes }

// ContentTypes returns the content categories present in the corpus.
func (o *Options) ContentTypes() []document.ContentType { return o.contentTypes }

// Topics returns the deduplicated, lexicographically sorted topics.
func (o *Options) Topics() []string { return o.topics }

// DateMin returns the earliest observed published date.
func (o *Options) DateMin() time.Time { return o.dateMin }

// DateMax returns the latest observed published date.
func (o *Options) DateMax() time.Time { return o.dateMax }
