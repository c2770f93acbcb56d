// Package trustsearch provides a Go client for the trustsearch API.
//
// The client covers the three public endpoints: search, query suggestions,
// and filter options.
//
//	client := trustsearch.New("http://localhost:8080")
//
//	page, err := client.Search(ctx, trustsearch.SearchParams{
//	    Query: "climate change",
//	    Filters: &trustsearch.Filters{
//	        SourceTypes:       []string{"academic"},
//	        MinAuthorityScore: 9,
//	    },
//	})
//
// Suggestions degrade gracefully: a failed request yields an empty slice,
// never an error, so autocomplete UIs stay responsive when the backend
// hiccups.
//
//	completions := client.Suggestions(ctx, "cli", 5)
package trustsearch
