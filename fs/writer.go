package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagemd"
	"github.com/google/uuid"
)

// Ensure Writer implements pagemd.DocumentWriter at compile time.
var _ pagemd.DocumentWriter = (*Writer)(nil)

// Writer writes rendered documents to disk with atomic replace semantics.
// The document is first written to a temporary file in the target
// directory and then renamed over the destination, so readers never
// observe a partial file.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteDocument stores content at path. When the existing file already
// holds identical content the write is skipped and reported via
// WriteResult.Unchanged.
func (w *Writer) WriteDocument(ctx context.Context, path string, content string) (*pagemd.WriteResult, error) {
	result := &pagemd.WriteResult{
		Bytes:       len(content),
		ContentHash: fmt.Sprintf("%x", xxhash.Sum64String(content)),
	}

	if prev, err := os.ReadFile(path); err == nil && xxhash.Sum64(prev) == xxhash.Sum64String(content) {
		result.Unchanged = true
		return result, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return nil, err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return nil, err
	}

	return result, nil
}
