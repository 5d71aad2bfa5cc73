package mock

import "github.com/fwojciec/pagemd"

var _ pagemd.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of pagemd.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (*pagemd.Metadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (*pagemd.Metadata, error) {
	return e.ExtractMetadataFn(html)
}
