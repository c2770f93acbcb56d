package search

import "github.com/veritia/trustsearch/internal/domain/document"

// Paginate returns the slice at offset (page-1)*size, up to size elements.
// A page past the end yields an empty slice, not an error.
func Paginate(docs []document.Doc, page, size int) []document.Doc {
	offset := (page - 1) * size
	if offset >= len(docs) {
		return []document.Doc{}
	}
	end := offset + size
	if end > len(docs) {
		end = len(docs)
	}
	return docs[offset:end]
}

// TotalPages returns ceil(total/size); zero matches yield zero pages.
func TotalPages(total, size int) int {
	if total == 0 {
		return 0
	}
	return (total + size - 1) / size
}
