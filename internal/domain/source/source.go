// Package source models the curated origins documents are drawn from.
package source

import "fmt"

// Type is the category of a trusted source.
type Type string

// Known source categories.
const (
	Wikipedia    Type = "wikipedia"
	Academic     Type = "academic"
	Government   Type = "government"
	Encyclopedia Type = "encyclopedia"
)

// Types lists every valid source category.
func Types() []Type {
	return []Type{Wikipedia, Academic, Government, Encyclopedia}
}

// IsValid reports whether t is a known source category.
func (t Type) IsValid() bool {
	switch t {
	case Wikipedia, Academic, Government, Encyclopedia:
		return true
	}
	return false
}

// TrustLevel is a coarse classification derived from the authority score.
type TrustLevel string

// Trust tiers, threshold-derived.
const (
	Verified      TrustLevel = "verified"
	High          TrustLevel = "high"
	Institutional TrustLevel = "institutional"
)

// Trust tier thresholds on the authority score.
const (
	verifiedThreshold = 9.0
	highThreshold     = 8.5
)

// Source is a curated trusted origin. Documents hold a read-only
// reference to their Source; the trust level is always derived from the
// authority score, never stored.
type Source struct {
	id             string
	name           string
	sourceType     Type
	domain         string
	authorityScore float64
}

// New validates and creates a Source.
func New(id, name string, t Type, domain string, authorityScore float64) (Source, error) {
	if id == "" {
		return Source{}, fmt.Errorf("source id is required")
	}
	if name == "" {
		return Source{}, fmt.Errorf("source name is required for %q", id)
	}
	if !t.IsValid() {
		return Source{}, fmt.Errorf("unknown source type %q for %q", t, id)
	}
	if authorityScore < 0 {
		return Source{}, fmt.Errorf("authority score for %q must be non-negative", id)
	}
	return Source{
		id:             id,
		name:           name,
		sourceType:     t,
		domain:         domain,
		authorityScore: authorityScore,
	}, nil
}

// ID returns the source identifier.
func (s *Source) ID() string { return s.id }

// Name returns the display name.
func (s *Source) Name() string { return s.name }

// Type returns the source category.
func (s *Source) Type() Type { return s.sourceType }

// Domain returns the source host name.
func (s *Source) Domain() string { return s.domain }

// AuthorityScore returns the query-independent trust rating.
func (s *Source) AuthorityScore() float64 { return s.authorityScore }

// TrustLevel derives the trust tier from the authority score:
// verified >= 9.0, high >= 8.5, institutional otherwise.
func (s *Source) TrustLevel() TrustLevel {
	switch {
	case s.authorityScore >= verifiedThreshold:
		return Verified
	case s.authorityScore >= highThreshold:
		return High
	default:
		return Institutional
	}
}
