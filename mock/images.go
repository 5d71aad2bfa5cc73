package mock

import (
	"context"

	"github.com/fwojciec/pagemd"
)

var _ pagemd.ImageLocalizer = (*ImageLocalizer)(nil)

// ImageLocalizer is a mock implementation of pagemd.ImageLocalizer.
type ImageLocalizer struct {
	LocalizeFn func(ctx context.Context, src string) (*pagemd.LocalizedImage, error)
}

func (l *ImageLocalizer) Localize(ctx context.Context, src string) (*pagemd.LocalizedImage, error) {
	return l.LocalizeFn(ctx, src)
}
