package trustsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "trustsearch-go-sdk"
)

// Client is the trustsearch SDK entry point.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// New creates a trustsearch Client for the given base URL
// (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
		userAgent:  cfg.userAgent,
	}
}

// Search runs a query and returns one page of results.
// Validation failures surface as *APIError with the server's code.
func (c *Client) Search(ctx context.Context, params SearchParams) (SearchPage, error) {
	if strings.TrimSpace(params.Query) == "" {
		return SearchPage{}, &APIError{
			Code:    CodeMissingQuery,
			Message: "Search query is required",
		}
	}

	var page SearchPage
	if err := c.getJSON(ctx, c.BuildSearchURL(params), &page); err != nil {
		return SearchPage{}, err
	}
	return page, nil
}

// Suggestions returns autocomplete candidates for a partial query. It never
// fails: any transport or server error yields an empty slice so callers can
// use it directly in UI paths. A zero limit uses the server default.
func (c *Client) Suggestions(ctx context.Context, partial string, limit int) []string {
	q := url.Values{}
	q.Set("q", partial)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/api/search/suggestions?"+q.Encode(), &resp); err != nil {
		return []string{}
	}
	if resp.Suggestions == nil {
		return []string{}
	}
	return resp.Suggestions
}

// FilterOptions fetches the filter values the corpus currently supports.
func (c *Client) FilterOptions(ctx context.Context) (FilterOptions, error) {
	var resp struct {
		Success bool          `json:"success"`
		Data    FilterOptions `json:"data"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/api/filters/options", &resp); err != nil {
		return FilterOptions{}, err
	}
	if !resp.Success {
		return FilterOptions{}, errors.New("trustsearch: filter options request unsuccessful")
	}
	return resp.Data, nil
}

// Healthy reports whether the service is ready to answer searches.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}

// BuildSearchURL renders the full search URL for the given parameters.
// Structured filters travel in the combined `filters` parameter as JSON.
func (c *Client) BuildSearchURL(params SearchParams) string {
	q := url.Values{}
	q.Set("q", params.Query)
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if blob := encodeFilters(params.Filters); blob != "" {
		q.Set("filters", blob)
	}
	return c.baseURL + "/api/search?" + q.Encode()
}

// encodeFilters serializes the non-empty filter fields as the combined JSON
// blob. An empty set yields "" so the parameter is omitted entirely.
func encodeFilters(f *Filters) string {
	if f == nil {
		return ""
	}

	wire := make(map[string]any)
	if len(f.SourceTypes) > 0 {
		wire["sourceTypes"] = f.SourceTypes
	}
	if len(f.ContentTypes) > 0 {
		wire["contentTypes"] = f.ContentTypes
	}
	if len(f.Topics) > 0 {
		wire["topics"] = f.Topics
	}
	if f.DateStart != nil && f.DateEnd != nil {
		wire["dateRange"] = map[string]string{
			"start": f.DateStart.UTC().Format(time.RFC3339),
			"end":   f.DateEnd.UTC().Format(time.RFC3339),
		}
	}
	if f.MinAuthorityScore > 0 {
		wire["minAuthorityScore"] = f.MinAuthorityScore
	}
	if len(wire) == 0 {
		return ""
	}

	blob, err := json.Marshal(wire)
	if err != nil {
		return ""
	}
	return string(blob)
}

// getJSON performs a GET and decodes either the payload or the error
// envelope.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("trustsearch: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("trustsearch: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("trustsearch: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var envelope struct {
			Error APIError `json:"error"`
		}
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Code != "" {
			envelope.Error.HTTPStatus = resp.StatusCode
			return &envelope.Error
		}
		return fmt.Errorf("trustsearch: unexpected status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("trustsearch: decode response: %w", err)
	}
	return nil
}
