// Package filter models the structured constraint set narrowing a search
// and its URL-parameter serialization.
package filter

import (
	"fmt"
	"time"

	"github.com/veritia/trustsearch/internal/domain"
	"github.com/veritia/trustsearch/internal/domain/document"
	"github.com/veritia/trustsearch/internal/domain/source"
)

// DefaultMaxAuthorityScore bounds the minAuthorityScore constraint when no
// configured maximum is supplied. Authority scores are conventionally 0-10.
const DefaultMaxAuthorityScore = 10.0

// DateRange is an inclusive [start, end] publication window.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange validates and creates a DateRange.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, fmt.Errorf("%w: start date must be before end date", domain.ErrValidation)
	}
	return DateRange{start: start, end: end}, nil
}

// Start returns the inclusive lower bound.
func (r DateRange) Start() time.Time { return r.start }

// End returns the inclusive upper bound.
func (r DateRange) End() time.Time { return r.end }

// Contains reports whether t falls within [start, end].
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.start) && !t.After(r.end)
}

// Set is the structured constraint set of a search. Every field is
// independently optional; an absent or empty field means "no constraint",
// never "exclude all".
type Set struct {
	sourceTypes       []source.Type
	contentTypes      []document.ContentType
	topics            []string
	dateRange         *DateRange
	minAuthorityScore float64
}

// NewSet validates and creates a Set. maxAuthorityScore bounds the
// minAuthorityScore constraint (0 falls back to DefaultMaxAuthorityScore).
func NewSet(
	sourceTypes []source.Type,
	contentTypes []document.ContentType,
	topics []string,
	dateRange *DateRange,
	minAuthorityScore float64,
	maxAuthorityScore float64,
) (Set, error) {
	for _, t := range sourceTypes {
		if !t.IsValid() {
			return Set{}, fmt.Errorf("%w: invalid source type %q", domain.ErrValidation, t)
		}
	}
	for _, t := range contentTypes {
		if !t.IsValid() {
			return Set{}, fmt.Errorf("%w: invalid content type %q", domain.ErrValidation, t)
		}
	}
	if maxAuthorityScore <= 0 {
		maxAuthorityScore = DefaultMaxAuthorityScore
	}
	if minAuthorityScore < 0 || minAuthorityScore > maxAuthorityScore {
		return Set{}, fmt.Errorf("%w: authority score must be between 0 and %g",
			domain.ErrValidation, maxAuthorityScore)
	}
	return Set{
		sourceTypes:       sourceTypes,
		contentTypes:      contentTypes,
		topics:            topics,
		dateRange:         dateRange,
		minAuthorityScore: minAuthorityScore,
	}, nil
}

// SourceTypes returns the source-category constraint (nil or empty = none).
func (s Set) SourceTypes() []source.Type { return s.sourceTypes }

// ContentTypes returns the content-category constraint (nil or empty = none).
func (s Set) ContentTypes() []document.ContentType { return s.contentTypes }

// Topics returns the topic constraint (nil or empty = none).
func (s Set) Topics() []string { return s.topics }

// DateRange returns the publication window constraint (nil = none).
func (s Set) DateRange() *DateRange { return s.dateRange }

// MinAuthorityScore returns the authority floor (0 = none).
func (s Set) MinAuthorityScore() float64 { return s.minAuthorityScore }

// IsEmpty reports whether the set imposes no constraint at all.
func (s Set) IsEmpty() bool {
	return len(s.sourceTypes) == 0 &&
		len(s.contentTypes) == 0 &&
		len(s.topics) == 0 &&
		s.dateRange == nil &&
		s.minAuthorityScore == 0
}
