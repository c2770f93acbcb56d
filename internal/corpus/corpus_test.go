package corpus

import (
	"testing"
	"time"

	"github.com/veritia/trustsearch/internal/domain/document"
	"github.com/veritia/trustsearch/internal/domain/source"
)

func TestDemo_Shape(t *testing.T) {
	c := Demo()

	if c.Size() != 15 {
		t.Errorf("Size() = %d, want 15", c.Size())
	}
	if got := len(c.Sources()); got != 6 {
		t.Errorf("len(Sources()) = %d, want 6", got)
	}
	if got := len(c.Dictionary()); got != 8 {
		t.Errorf("len(Dictionary()) = %d, want 8", got)
	}
}

func TestDemo_SourcesAreShared(t *testing.T) {
	c := Demo()

	known := make(map[*source.Source]bool)
	for _, s := range c.Sources() {
		known[s] = true
	}
	for _, d := range c.Documents() {
		if !known[d.Source()] {
			t.Errorf("document %q holds a source pointer outside the registry", d.ID())
		}
	}
}

func TestNew_RejectsUnregisteredSource(t *testing.T) {
	registered := mustSource("a", "A", source.Wikipedia, "a.org", 8.0)
	stray := mustSource("b", "B", source.Wikipedia, "b.org", 8.0)

	doc, err := document.New("d1", "Title", "s", "u", stray, 0.5, nil,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil, document.Article)
	if err != nil {
		t.Fatalf("document.New: %v", err)
	}

	if _, err := New([]*source.Source{registered}, []document.Doc{doc}, nil); err == nil {
		t.Error("expected an error for a document with an unregistered source")
	}
}
