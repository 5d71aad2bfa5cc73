package mock

import (
	"context"

	"github.com/fwojciec/pagemd"
)

var _ pagemd.Rewriter = (*Rewriter)(nil)

// Rewriter is a mock implementation of pagemd.Rewriter.
type Rewriter struct {
	RewriteFn func(ctx context.Context, html string) (string, []pagemd.ImageRewrite, error)
}

func (r *Rewriter) Rewrite(ctx context.Context, html string) (string, []pagemd.ImageRewrite, error) {
	return r.RewriteFn(ctx, html)
}
