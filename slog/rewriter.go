package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemd"
)

// Ensure LoggingRewriter implements pagemd.Rewriter.
var _ pagemd.Rewriter = (*LoggingRewriter)(nil)

// LoggingRewriter wraps a Rewriter with logging.
type LoggingRewriter struct {
	next   pagemd.Rewriter
	logger *slog.Logger
}

// NewLoggingRewriter creates a new LoggingRewriter.
func NewLoggingRewriter(next pagemd.Rewriter, logger *slog.Logger) *LoggingRewriter {
	return &LoggingRewriter{next: next, logger: logger}
}

// Rewrite delegates to the wrapped rewriter and logs the operation.
func (r *LoggingRewriter) Rewrite(ctx context.Context, html string) (out string, rewrites []pagemd.ImageRewrite, err error) {
	defer func(begin time.Time) {
		localized := 0
		for _, rw := range rewrites {
			if rw.Localized {
				localized++
			}
		}
		r.logger.Info("image rewrite",
			"images", len(rewrites),
			"localized", localized,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Rewrite(ctx, html)
}
