package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemd"
)

// Ensure LoggingWriter implements pagemd.DocumentWriter.
var _ pagemd.DocumentWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a DocumentWriter with logging.
type LoggingWriter struct {
	next   pagemd.DocumentWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next pagemd.DocumentWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteDocument delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteDocument(ctx context.Context, path string, content string) (result *pagemd.WriteResult, err error) {
	defer func(begin time.Time) {
		var bytes int
		var unchanged bool
		if result != nil {
			bytes = result.Bytes
			unchanged = result.Unchanged
		}
		w.logger.Info("document write",
			"path", path,
			"bytes", bytes,
			"unchanged", unchanged,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDocument(ctx, path, content)
}
