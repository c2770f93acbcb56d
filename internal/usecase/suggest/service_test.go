package suggest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/veritia/trustsearch/internal/corpus"
	"github.com/veritia/trustsearch/internal/domain"
	"github.com/veritia/trustsearch/internal/domain/suggestion"
)

// mockDict satisfies DictionaryReader with a fixed entry list.
type mockDict struct {
	entries []suggestion.Entry
}

func (m *mockDict) Dictionary() []suggestion.Entry { return m.entries }

func demoService() *Service {
	return New(corpus.Demo(), 0, 0)
}

func TestSuggest_PrefixTakesWholeEntry(t *testing.T) {
	// "cli" is a prefix of the "climate" key, so the entry contributes all
	// its completions, not just the ones containing "cli".
	got, err := demoService().Suggest(context.Background(), "cli", 10)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	want := []string{
		"climate change", "climate change effects", "climate change solutions",
		"climate change causes", "climate science",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSuggest_SubstringFallback(t *testing.T) {
	// "intel" is not a prefix of any key; only completions containing it
	// qualify.
	got, err := demoService().Suggest(context.Background(), "intel", 10)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	if len(got) == 0 {
		t.Fatal("expected substring matches for 'intel'")
	}
	for _, s := range got {
		if !strings.Contains(s, "intel") {
			t.Errorf("completion %q does not contain the partial", s)
		}
	}
}

func TestSuggest_CaseAndWhitespaceNormalized(t *testing.T) {
	svc := demoService()

	upper, err := svc.Suggest(context.Background(), "  CLI  ", 10)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	lower, err := svc.Suggest(context.Background(), "cli", 10)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(upper) != len(lower) {
		t.Errorf("normalized input: got %d results, want %d", len(upper), len(lower))
	}
}

func TestSuggest_ShortPartialYieldsEmptySet(t *testing.T) {
	for _, partial := range []string{"", "c", " c "} {
		got, err := demoService().Suggest(context.Background(), partial, 5)
		if err != nil {
			t.Fatalf("Suggest(%q): %v", partial, err)
		}
		if got == nil {
			t.Fatalf("Suggest(%q) must return an empty slice, not nil", partial)
		}
		if len(got) != 0 {
			t.Errorf("Suggest(%q) = %v, want empty", partial, got)
		}
	}
}

func TestSuggest_LimitHandling(t *testing.T) {
	svc := demoService()

	// Zero means the default.
	got, err := svc.Suggest(context.Background(), "climate", 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(got) > DefaultLimit {
		t.Errorf("default limit: got %d results, want at most %d", len(got), DefaultLimit)
	}

	// Truncation at an explicit limit.
	got, err = svc.Suggest(context.Background(), "climate", 2)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("limit 2: got %d results", len(got))
	}

	// Out-of-range limits are errors.
	for _, limit := range []int{-1, 21} {
		if _, err := svc.Suggest(context.Background(), "climate", limit); !errors.Is(err, domain.ErrInvalidLimit) {
			t.Errorf("limit %d: err = %v, want ErrInvalidLimit", limit, err)
		}
	}
}

func TestSuggest_DeduplicatesAcrossEntries(t *testing.T) {
	dict := &mockDict{entries: []suggestion.Entry{
		suggestion.NewEntry("go", []string{"go tooling", "go modules"}),
		suggestion.NewEntry("golang", []string{"go tooling", "golang news"}),
	}}
	svc := New(dict, 0, 0)

	got, err := svc.Suggest(context.Background(), "go", 10)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	seen := make(map[string]int)
	for _, s := range got {
		seen[s]++
	}
	if seen["go tooling"] != 1 {
		t.Errorf("'go tooling' appeared %d times, want once", seen["go tooling"])
	}
	// First-seen order: entries contribute in dictionary order.
	if len(got) == 0 || got[0] != "go tooling" {
		t.Errorf("first suggestion = %v, want 'go tooling'", got)
	}
}

func TestSuggest_NoMatches(t *testing.T) {
	got, err := demoService().Suggest(context.Background(), "zzqx", 5)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
