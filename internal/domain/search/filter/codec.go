package filter

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/veritia/trustsearch/internal/domain"
	"github.com/veritia/trustsearch/internal/domain/document"
	"github.com/veritia/trustsearch/internal/domain/source"
)

// ErrMalformed signals filter input that could not be parsed at all.
// The combined-JSON form treats it as fatal; the itemized form drops the
// offending parameter and proceeds.
var ErrMalformed = fmt.Errorf("%w: malformed filter parameter", domain.ErrInvalidFilters)

// Parameter keys of the itemized wire form.
const (
	keySourceTypes       = "sourceTypes"
	keyContentTypes      = "contentTypes"
	keyTopics            = "topics"
	keyDateRange         = "dateRange"
	keyMinAuthorityScore = "minAuthorityScore"
)

// reservedKeys are request parameters that never carry filter state.
var reservedKeys = map[string]bool{"q": true, "page": true, "limit": true, "filters": true}

// setWire is the JSON shape shared by the combined form and the echo in
// search responses. Dates travel as ISO-8601 strings.
type setWire struct {
	SourceTypes       []string       `json:"sourceTypes,omitempty"`
	ContentTypes      []string       `json:"contentTypes,omitempty"`
	Topics            []string       `json:"topics,omitempty"`
	DateRange         *dateRangeWire `json:"dateRange,omitempty"`
	MinAuthorityScore float64        `json:"minAuthorityScore,omitempty"`
}

type dateRangeWire struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MarshalJSON serializes the set in its wire shape. Empty list fields are
// omitted entirely; a decoded round trip therefore yields them as absent.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.wire()) //nolint:wrapcheck // plain struct marshal
}

func (s Set) wire() setWire {
	w := setWire{
		Topics:            s.topics,
		MinAuthorityScore: s.minAuthorityScore,
	}
	if len(s.topics) == 0 {
		w.Topics = nil
	}
	for _, t := range s.sourceTypes {
		w.SourceTypes = append(w.SourceTypes, string(t))
	}
	for _, t := range s.contentTypes {
		w.ContentTypes = append(w.ContentTypes, string(t))
	}
	if s.dateRange != nil {
		w.DateRange = &dateRangeWire{
			Start: s.dateRange.start.UTC().Format(time.RFC3339),
			End:   s.dateRange.end.UTC().Format(time.RFC3339),
		}
	}
	return w
}

// Encode flattens the set into URL query parameters. List-valued fields
// serialize as JSON array strings only when non-empty, the date range as a
// JSON object with ISO-8601 start/end, scalars via their string form.
// Absent fields are omitted, never emitted as empty strings.
func Encode(s Set) url.Values {
	params := url.Values{}
	w := s.wire()

	if len(w.SourceTypes) > 0 {
		params.Set(keySourceTypes, mustJSON(w.SourceTypes))
	}
	if len(w.ContentTypes) > 0 {
		params.Set(keyContentTypes, mustJSON(w.ContentTypes))
	}
	if len(w.Topics) > 0 {
		params.Set(keyTopics, mustJSON(w.Topics))
	}
	if w.DateRange != nil {
		params.Set(keyDateRange, mustJSON(w.DateRange))
	}
	if w.MinAuthorityScore > 0 {
		params.Set(keyMinAuthorityScore,
			strconv.FormatFloat(w.MinAuthorityScore, 'f', -1, 64))
	}
	return params
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		// Only plain strings and structs of strings reach here.
		panic(err)
	}
	return string(b)
}

// DecodeCombined parses the combined JSON blob of the `filters` parameter.
// Malformed JSON is fatal (ErrMalformed); recognized but invalid values
// (unknown categories, inverted date range, out-of-range score) fail
// validation in NewSet.
func DecodeCombined(blob string, maxAuthorityScore float64) (Set, error) {
	var w setWire
	if err := json.Unmarshal([]byte(blob), &w); err != nil {
		return Set{}, fmt.Errorf("%w: %s", ErrMalformed, "invalid JSON")
	}
	return setFromWire(w, maxAuthorityScore)
}

// Decode parses the itemized filter parameters. Each malformed parameter is
// dropped and reported in the returned warnings while the rest of the set
// is still built; only semantic validation failures return an error.
func Decode(params url.Values, maxAuthorityScore float64) (Set, []string, error) {
	var w setWire
	var warnings []string

	warn := func(key, reason string) {
		warnings = append(warnings, fmt.Sprintf("dropped %s: %s", key, reason))
	}

	for key := range params {
		if reservedKeys[key] {
			continue
		}
		raw := params.Get(key)
		switch key {
		case keySourceTypes:
			w.SourceTypes = decodeList(raw, key, warn)
		case keyContentTypes:
			w.ContentTypes = decodeList(raw, key, warn)
		case keyTopics:
			w.Topics = decodeList(raw, key, warn)
		case keyDateRange:
			w.DateRange = decodeDateRange(raw, warn)
		case keyMinAuthorityScore:
			if score, ok := decodeNumber(raw); ok {
				w.MinAuthorityScore = score
			} else {
				warn(key, "not a number")
			}
		default:
			warn(key, "unknown filter parameter")
		}
	}

	set, err := setFromWire(w, maxAuthorityScore)
	if err != nil {
		return Set{}, warnings, err
	}
	return set, warnings, nil
}

// decodeList parses a list-valued parameter: JSON array first, then a bare
// string as a single-element list. Other JSON shapes are dropped.
func decodeList(raw, key string, warn func(key, reason string)) []string {
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}
	if json.Valid([]byte(raw)) {
		warn(key, "expected a JSON array")
		return nil
	}
	// Raw string fallback: treat the value itself as the single entry.
	return []string{raw}
}

// decodeDateRange parses the dateRange parameter: a JSON object carrying
// both start and end ISO-8601 strings. Anything else is dropped.
func decodeDateRange(raw string, warn func(key, reason string)) *dateRangeWire {
	var dr dateRangeWire
	if err := json.Unmarshal([]byte(raw), &dr); err != nil {
		warn(keyDateRange, "invalid JSON")
		return nil
	}
	if dr.Start == "" || dr.End == "" {
		warn(keyDateRange, "requires both start and end")
		return nil
	}
	return &dr
}

// decodeNumber parses a scalar: JSON number first, then a plain float.
func decodeNumber(raw string) (float64, bool) {
	var n float64
	if err := json.Unmarshal([]byte(raw), &n); err == nil {
		return n, true
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n, true
	}
	return 0, false
}

func setFromWire(w setWire, maxAuthorityScore float64) (Set, error) {
	sourceTypes := make([]source.Type, 0, len(w.SourceTypes))
	for _, t := range w.SourceTypes {
		sourceTypes = append(sourceTypes, source.Type(t))
	}
	if len(sourceTypes) == 0 {
		sourceTypes = nil
	}

	contentTypes := make([]document.ContentType, 0, len(w.ContentTypes))
	for _, t := range w.ContentTypes {
		contentTypes = append(contentTypes, document.ContentType(t))
	}
	if len(contentTypes) == 0 {
		contentTypes = nil
	}

	var dateRange *DateRange
	if w.DateRange != nil {
		start, err := parseDate(w.DateRange.Start)
		if err != nil {
			return Set{}, fmt.Errorf("%w: invalid date range start: %s", domain.ErrValidation, err)
		}
		end, err := parseDate(w.DateRange.End)
		if err != nil {
			return Set{}, fmt.Errorf("%w: invalid date range end: %s", domain.ErrValidation, err)
		}
		dr, err := NewDateRange(start, end)
		if err != nil {
			return Set{}, err
		}
		dateRange = &dr
	}

	topics := w.Topics
	if len(topics) == 0 {
		topics = nil
	}

	return NewSet(sourceTypes, contentTypes, topics, dateRange,
		w.MinAuthorityScore, maxAuthorityScore)
}

// parseDate accepts full ISO-8601 timestamps and bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date %q", s)
	}
	return t, nil
}
