// Package suggestion holds the static autocomplete dictionary types.
package suggestion

// Entry maps a dictionary key to its curated completions. The dictionary is
// an ordered slice, not a map: the lookup algorithm depends on a stable
// iteration order across entries.
type Entry struct {
	key         string
	completions []string
}

// NewEntry creates a dictionary entry.
func NewEntry(key string, completions []string) Entry {
	return Entry{key: key, completions: completions}
}

// Key returns the dictionary key.
func (e *Entry) Key() string { return e.key }

// Completions returns the curated completions in dictionary order.
func (e *Entry) Completions() []string { return e.completions }
