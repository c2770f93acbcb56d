package chi

import (
	"time"

	"github.com/veritia/trustsearch/internal/domain/document"
	"github.com/veritia/trustsearch/internal/domain/search/options"
	"github.com/veritia/trustsearch/internal/domain/search/result"
	"github.com/veritia/trustsearch/internal/usecase/health"
)

// Wire types. Field names are part of the public API contract and must not
// change: clients round-trip search state through them.

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"requestId"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// Error codes of the envelope.
const (
	codeMissingQuery     = "MISSING_QUERY"
	codeInvalidParams    = "INVALID_PARAMETERS"
	codeInvalidFilters   = "INVALID_FILTERS"
	codeInvalidLimit     = "INVALID_LIMIT"
	codeValidationError  = "VALIDATION_ERROR"
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	codeInternalError    = "INTERNAL_ERROR"
)

type sourceWire struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Domain         string  `json:"domain"`
	AuthorityScore float64 `json:"authorityScore"`
	TrustLevel     string  `json:"trustLevel"`
}

type resultWire struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Snippet        string     `json:"snippet"`
	URL            string     `json:"url"`
	Source         sourceWire `json:"source"`
	RelevanceScore float64    `json:"relevanceScore"`
	PublishedDate  *time.Time `json:"publishedDate,omitempty"`
	LastUpdated    time.Time  `json:"lastUpdated"`
	Topics         []string   `json:"topics"`
	ContentType    string     `json:"contentType"`
}

type searchResponse struct {
	Results     []resultWire `json:"results"`
	TotalCount  int          `json:"totalCount"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	Query       string       `json:"query"`
	Filters     any          `json:"filters"`
	// SearchTime is the measured pipeline time in milliseconds. Over the
	// in-memory corpus this is usually well under 1 ms, so fractional
	// values near zero are the norm.
	SearchTime float64 `json:"searchTime"`
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
	Query       string   `json:"query"`
	Count       int      `json:"count"`
}

type dateBoundsWire struct {
	Min time.Time `json:"min"`
	Max time.Time `json:"max"`
}

type optionsData struct {
	AvailableSourceTypes  []string       `json:"availableSourceTypes"`
	AvailableContentTypes []string       `json:"availableContentTypes"`
	AvailableTopics       []string       `json:"availableTopics"`
	DateRange             dateBoundsWire `json:"dateRange"`
}

type optionsResponse struct {
	Success bool        `json:"success"`
	Data    optionsData `json:"data"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func documentToWire(d *document.Doc) resultWire {
	src := d.Source()
	return resultWire{
		ID:      d.ID(),
		Title:   d.Title(),
		Snippet: d.Snippet(),
		URL:     d.URL(),
		Source: sourceWire{
			ID:             src.ID(),
			Name:           src.Name(),
			Type:           string(src.Type()),
			Domain:         src.Domain(),
			AuthorityScore: src.AuthorityScore(),
			TrustLevel:     string(src.TrustLevel()),
		},
		RelevanceScore: d.RelevanceScore(),
		PublishedDate:  d.PublishedDate(),
		LastUpdated:    d.LastUpdated(),
		Topics:         d.Topics(),
		ContentType:    string(d.ContentType()),
	}
}

func pageToWire(p *result.Page) searchResponse {
	docs := p.Results()
	results := make([]resultWire, 0, len(docs))
	for i := range docs {
		results = append(results, documentToWire(&docs[i]))
	}
	return searchResponse{
		Results:     results,
		TotalCount:  p.TotalCount(),
		CurrentPage: p.CurrentPage(),
		TotalPages:  p.TotalPages(),
		Query:       p.Query(),
		Filters:     p.Filters(),
		SearchTime:  float64(p.Took().Microseconds()) / 1000.0,
	}
}

func optionsToWire(o *options.Options) optionsResponse {
	sourceTypes := make([]string, 0, len(o.SourceTypes()))
	for _, t := range o.SourceTypes() {
		sourceTypes = append(sourceTypes, string(t))
	}
	contentTypes := make([]string, 0, len(o.ContentTypes()))
	for _, t := range o.ContentTypes() {
		contentTypes = append(contentTypes, string(t))
	}
	topics := o.Topics()
	if topics == nil {
		topics = []string{}
	}
	return optionsResponse{
		Success: true,
		Data: optionsData{
			AvailableSourceTypes:  sourceTypes,
			AvailableContentTypes: contentTypes,
			AvailableTopics:       topics,
			DateRange:             dateBoundsWire{Min: o.DateMin(), Max: o.DateMax()},
		},
	}
}

func healthToWire(report health.Report) healthResponse {
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return healthResponse{Status: string(report.Status), Checks: checks}
}
