// Package readability implements content extraction backed by
// go-readability, the Go port of the algorithm behind browser reader
// modes.
package readability

import (
	"strings"

	"github.com/fwojciec/pagemd"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagemd.Extractor at compile time.
var _ pagemd.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to score page regions by content density
// and keep the winner. Useful for pages whose markup defeats the selector
// candidates.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article content chosen by the readability algorithm.
// No base URL is supplied, so image references rewritten earlier in the
// pipeline pass through unchanged.
func (e *Extractor) Extract(rawHTML string) (*pagemd.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagemd.Errorf(pagemd.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &pagemd.ExtractResult{
		ContentHTML: article.Content,
		Matched:     "readability",
	}, nil
}
