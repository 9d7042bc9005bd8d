package mock

import "github.com/jwiater/pagemeta"

var _ pagemeta.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagemeta.Extractor.
type Extractor struct {
	ExtractFn func(html string, pageURL string) (*pagemeta.Extraction, error)
}

func (e *Extractor) Extract(html string, pageURL string) (*pagemeta.Extraction, error) {
	return e.ExtractFn(html, pageURL)
}
