package trustsearch

import "time"

// Source describes the provenance of a search result.
type Source struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Domain         string  `json:"domain"`
	AuthorityScore float64 `json:"authorityScore"`
	TrustLevel     string  `json:"trustLevel"`
}

// Result is a single search hit.
type Result struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Snippet        string     `json:"snippet"`
	URL            string     `json:"url"`
	Source         Source     `json:"source"`
	RelevanceScore float64    `json:"relevanceScore"`
	PublishedDate  *time.Time `json:"publishedDate,omitempty"`
	LastUpdated    time.Time  `json:"lastUpdated"`
	Topics         []string   `json:"topics"`
	ContentType    string     `json:"contentType"`
}

// SearchPage is one page of search results with pagination totals.
type SearchPage struct {
	Results     []Result `json:"results"`
	TotalCount  int      `json:"totalCount"`
	CurrentPage int      `json:"currentPage"`
	TotalPages  int      `json:"totalPages"`
	Query       string   `json:"query"`
	SearchTime  float64  `json:"searchTime"` // milliseconds
}

// Filters narrows a search. Zero values mean "unconstrained"; list filters
// combine per-field as OR and across fields as AND.
type Filters struct {
	SourceTypes       []string
	ContentTypes      []string
	Topics            []string
	DateStart         *time.Time
	DateEnd           *time.Time
	MinAuthorityScore float64
}

// SearchParams are the inputs to Search. Query is required; Page and Limit
// fall back to the server defaults when zero.
type SearchParams struct {
	Query   string
	Page    int
	Limit   int
	Filters *Filters
}

// DateBounds is the publication-date span of the corpus.
type DateBounds struct {
	Min time.Time `json:"min"`
	Max time.Time `json:"max"`
}

// FilterOptions lists the values a client can filter by.
type FilterOptions struct {
	AvailableSourceTypes  []string   `json:"availableSourceTypes"`
	AvailableContentTypes []string   `json:"availableContentTypes"`
	AvailableTopics       []string   `json:"availableTopics"`
	DateRange             DateBounds `json:"dateRange"`
}
