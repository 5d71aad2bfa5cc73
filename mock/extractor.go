package mock

import "github.com/fwojciec/pagemd"

var _ pagemd.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagemd.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagemd.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*pagemd.ExtractResult, error) {
	return e.ExtractFn(html)
}
