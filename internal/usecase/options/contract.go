package options

import (
	"github.com/veritia/trustsearch/internal/domain/document"
	"github.com/veritia/trustsearch/internal/domain/source"
)

// CorpusReader provides the corpus view the deriver scans.
type CorpusReader interface {
	Documents() []document.Doc
	Sources() []*source.Source
}
