package health

// CorpusInfo exposes the corpus facts the health check inspects.
type CorpusInfo interface {
	Size() int
}
