package filter

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritia/trustsearch/internal/domain"
	"github.com/veritia/trustsearch/internal/domain/document"
	"github.com/veritia/trustsearch/internal/domain/source"
)

func fullSet(t *testing.T) Set {
	t.Helper()
	dr, err := NewDateRange(day(2023, 1, 1), day(2024, 1, 1))
	require.NoError(t, err)
	s, err := NewSet(
		[]source.Type{source.Academic, source.Government},
		[]document.ContentType{document.Paper},
		[]string{"Climate Science"},
		&dr, 8.5, 0,
	)
	require.NoError(t, err)
	return s
}

func TestEncode_WireShapes(t *testing.T) {
	params := Encode(fullSet(t))

	assert.Equal(t, `["academic","government"]`, params.Get("sourceTypes"))
	assert.Equal(t, `["paper"]`, params.Get("contentTypes"))
	assert.Equal(t, `["Climate Science"]`, params.Get("topics"))
	assert.Equal(t, `{"start":"2023-01-01T00:00:00Z","end":"2024-01-01T00:00:00Z"}`,
		params.Get("dateRange"))
	assert.Equal(t, "8.5", params.Get("minAuthorityScore"))
}

func TestEncode_EmptySetOmitsEverything(t *testing.T) {
	empty, err := NewSet(nil, nil, nil, nil, 0, 0)
	require.NoError(t, err)

	params := Encode(empty)
	assert.Empty(t, params, "empty set must not emit any parameter")
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original := fullSet(t)

	decoded, warnings, err := Decode(Encode(original), 0)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, original.SourceTypes(), decoded.SourceTypes())
	assert.Equal(t, original.ContentTypes(), decoded.ContentTypes())
	assert.Equal(t, original.Topics(), decoded.Topics())
	assert.Equal(t, original.MinAuthorityScore(), decoded.MinAuthorityScore())
	require.NotNil(t, decoded.DateRange())
	assert.True(t, original.DateRange().Start().Equal(decoded.DateRange().Start()))
	assert.True(t, original.DateRange().End().Equal(decoded.DateRange().End()))
}

func TestDecodeCombined(t *testing.T) {
	t.Run("full blob", func(t *testing.T) {
		blob := `{"sourceTypes":["academic"],"topics":["Physics"],` +
			`"dateRange":{"start":"2023-01-01","end":"2024-06-30"},"minAuthorityScore":9}`

		set, err := DecodeCombined(blob, 0)
		require.NoError(t, err)
		assert.Equal(t, []source.Type{source.Academic}, set.SourceTypes())
		assert.Equal(t, []string{"Physics"}, set.Topics())
		assert.Equal(t, 9.0, set.MinAuthorityScore())
		require.NotNil(t, set.DateRange())
	})

	t.Run("malformed JSON is fatal", func(t *testing.T) {
		_, err := DecodeCombined(`{"sourceTypes":[`, 0)
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("unknown category is a validation error, not malformed", func(t *testing.T) {
		_, err := DecodeCombined(`{"sourceTypes":["blog"]}`, 0)
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.NotErrorIs(t, err, ErrMalformed)
	})

	t.Run("inverted date range fails validation", func(t *testing.T) {
		_, err := DecodeCombined(
			`{"dateRange":{"start":"2024-01-01","end":"2023-01-01"}}`, 0)
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.NotErrorIs(t, err, ErrMalformed)
	})
}

func TestDecode_LenientItemized(t *testing.T) {
	t.Run("bare string becomes single-element list", func(t *testing.T) {
		params := url.Values{"sourceTypes": {"wikipedia"}}
		set, warnings, err := Decode(params, 0)
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, []source.Type{source.Wikipedia}, set.SourceTypes())
	})

	t.Run("wrong JSON shape is dropped with a warning", func(t *testing.T) {
		params := url.Values{"topics": {`{"nested":"object"}`}}
		set, warnings, err := Decode(params, 0)
		require.NoError(t, err)
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "topics")
		assert.Empty(t, set.Topics())
	})

	t.Run("non-numeric score is dropped with a warning", func(t *testing.T) {
		params := url.Values{"minAuthorityScore": {"high"}}
		set, warnings, err := Decode(params, 0)
		require.NoError(t, err)
		assert.Len(t, warnings, 1)
		assert.Zero(t, set.MinAuthorityScore())
	})

	t.Run("date range missing end is dropped", func(t *testing.T) {
		params := url.Values{"dateRange": {`{"start":"2023-01-01"}`}}
		set, warnings, err := Decode(params, 0)
		require.NoError(t, err)
		assert.Len(t, warnings, 1)
		assert.Nil(t, set.DateRange())
	})

	t.Run("unknown parameter warns", func(t *testing.T) {
		params := url.Values{"color": {"blue"}}
		_, warnings, err := Decode(params, 0)
		require.NoError(t, err)
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "color")
	})

	t.Run("reserved request parameters are ignored", func(t *testing.T) {
		params := url.Values{
			"q": {"climate"}, "page": {"2"}, "limit": {"10"}, "filters": {"{}"},
		}
		set, warnings, err := Decode(params, 0)
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.True(t, set.IsEmpty())
	})

	t.Run("semantic failure still returns collected warnings", func(t *testing.T) {
		params := url.Values{
			"sourceTypes": {"blog"},
			"color":       {"blue"},
		}
		_, warnings, err := Decode(params, 0)
		require.Error(t, err)
		assert.Len(t, warnings, 1)
	})
}

func TestParseDate_Formats(t *testing.T) {
	full, err := parseDate("2023-06-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC), full)

	bare, err := parseDate("2023-06-15")
	require.NoError(t, err)
	assert.Equal(t, day(2023, 6, 15), bare)

	_, err = parseDate("15/06/2023")
	require.Error(t, err)
}

func TestMarshalJSON_OmitsEmptyLists(t *testing.T) {
	set, err := NewSet(nil, nil, nil, nil, 7, 0)
	require.NoError(t, err)

	blob, err := set.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"minAuthorityScore":7}`, string(blob))
}
