package trustsearch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_DecodesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/search", r.URL.Path)
		assert.Equal(t, "climate", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results":[{"id":"climate-wiki-1","title":"Climate Change",
				"source":{"id":"wikipedia","type":"wikipedia","trustLevel":"high","authorityScore":8.5},
				"relevanceScore":0.95,"lastUpdated":"2024-01-10T00:00:00Z",
				"topics":["Environment"],"contentType":"article"}],
			"totalCount":1,"currentPage":1,"totalPages":1,
			"query":"climate","searchTime":0.42}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	page, err := client.Search(context.Background(), SearchParams{Query: "climate"})
	require.NoError(t, err)

	require.Len(t, page.Results, 1)
	assert.Equal(t, "climate-wiki-1", page.Results[0].ID)
	assert.Equal(t, "high", page.Results[0].Source.TrustLevel)
	assert.Equal(t, 1, page.TotalCount)
	assert.Equal(t, 0.42, page.SearchTime)
}

func TestSearch_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{
				"code":      "INVALID_FILTERS",
				"message":   "Invalid filters format",
				"timestamp": "2024-01-01T00:00:00.000Z",
				"requestId": "req-1",
			},
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.Search(context.Background(), SearchParams{Query: "climate"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, CodeInvalidFilters, apiErr.Code)
	assert.Equal(t, "req-1", apiErr.RequestID)
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
}

func TestSearch_EmptyQueryFailsClientSide(t *testing.T) {
	client := New("http://127.0.0.1:1") // must not be contacted

	_, err := client.Search(context.Background(), SearchParams{Query: "   "})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, CodeMissingQuery, apiErr.Code)
}

func TestSuggestions_DegradeToEmpty(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		got := New(srv.URL).Suggestions(context.Background(), "cli", 5)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unreachable server", func(t *testing.T) {
		client := New("http://127.0.0.1:1", WithTimeout(100*time.Millisecond))
		got := client.Suggestions(context.Background(), "cli", 5)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"suggestions":["climate change"],"query":"cli","count":1}`))
		}))
		defer srv.Close()

		got := New(srv.URL).Suggestions(context.Background(), "cli", 5)
		assert.Equal(t, []string{"climate change"}, got)
	})
}

func TestFilterOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/filters/options", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{
			"availableSourceTypes":["wikipedia","academic"],
			"availableContentTypes":["article"],
			"availableTopics":["Science"],
			"dateRange":{"min":"2017-06-12T00:00:00Z","max":"2024-01-15T00:00:00Z"}}}`))
	}))
	defer srv.Close()

	opts, err := New(srv.URL).FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"wikipedia", "academic"}, opts.AvailableSourceTypes)
	assert.Equal(t, 2017, opts.DateRange.Min.Year())
}

func TestBuildSearchURL(t *testing.T) {
	client := New("http://api.example.org/")

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	raw := client.BuildSearchURL(SearchParams{
		Query: "climate change",
		Page:  2,
		Limit: 20,
		Filters: &Filters{
			SourceTypes:       []string{"academic"},
			DateStart:         &start,
			DateEnd:           &end,
			MinAuthorityScore: 8.5,
		},
	})

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/api/search", u.Path)

	q := u.Query()
	assert.Equal(t, "climate change", q.Get("q"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "20", q.Get("limit"))

	var filters map[string]any
	require.NoError(t, json.Unmarshal([]byte(q.Get("filters")), &filters))
	assert.Equal(t, []any{"academic"}, filters["sourceTypes"])
	assert.Equal(t, 8.5, filters["minAuthorityScore"])
	dr, ok := filters["dateRange"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2023-01-01T00:00:00Z", dr["start"])
}

func TestBuildSearchURL_OmitsEmptyFilters(t *testing.T) {
	client := New("http://api.example.org")

	raw := client.BuildSearchURL(SearchParams{Query: "climate", Filters: &Filters{}})
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.False(t, u.Query().Has("filters"), "empty filter set must omit the parameter")
	assert.False(t, u.Query().Has("page"))
}

func TestHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	assert.True(t, New(srv.URL).Healthy(context.Background()))

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	assert.False(t, New(down.URL).Healthy(context.Background()))
}
