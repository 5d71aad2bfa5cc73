package mock

import (
	"context"

	"github.com/fwojciec/pagemd"
)

var _ pagemd.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of pagemd.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, path string, content string) (*pagemd.WriteResult, error)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, path string, content string) (*pagemd.WriteResult, error) {
	return w.WriteDocumentFn(ctx, path, content)
}
