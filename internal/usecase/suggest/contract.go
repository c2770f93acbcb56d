package suggest

import "github.com/veritia/trustsearch/internal/domain/suggestion"

// DictionaryReader provides the ordered autocomplete dictionary.
type DictionaryReader interface {
	Dictionary() []suggestion.Entry
}
