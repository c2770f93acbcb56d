package search

import (
	"testing"
	"time"

	"github.com/veritia/trustsearch/internal/domain/document"
	"github.com/veritia/trustsearch/internal/domain/source"
)

// --- Shared test fixtures ---

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func makeSource(t *testing.T, id string, typ source.Type, score float64) *source.Source {
	t.Helper()
	s, err := source.New(id, "Source "+id, typ, id+".example.org", score)
	if err != nil {
		t.Fatalf("source.New(%q): %v", id, err)
	}
	return &s
}

type docParams struct {
	id          string
	title       string
	snippet     string
	src         *source.Source
	relevance   float64
	published   *time.Time
	topics      []string
	contentType document.ContentType
}

func makeDoc(t *testing.T, p docParams) document.Doc {
	t.Helper()
	if p.title == "" {
		p.title = "Title " + p.id
	}
	if p.src == nil {
		p.src = makeSource(t, p.id+"-src", source.Wikipedia, 8.0)
	}
	if p.contentType == "" {
		p.contentType = document.Article
	}
	d, err := document.New(
		p.id, p.title, p.snippet, "https://example.org/"+p.id,
		p.src, p.relevance, p.published, day(2024, 1, 1),
		p.topics, p.contentType,
	)
	if err != nil {
		t.Fatalf("document.New(%q): %v", p.id, err)
	}
	return d
}

// mockCorpus satisfies CorpusReader with a fixed document slice.
type mockCorpus struct {
	docs []document.Doc
}

func (m *mockCorpus) Documents() []document.Doc { return m.docs }
