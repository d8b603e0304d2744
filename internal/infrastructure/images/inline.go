package images

import (
	"context"

	"github.com/prasanth-t0205/techblog/internal/application/ports"
)

// InlineStorage stores images as their submitted data URLs. Used when
// no bucket is configured; the browser renders the data URL directly.
type InlineStorage struct{}

func NewInlineStorage() *InlineStorage { return &InlineStorage{} }

func (InlineStorage) Upload(_ context.Context, data string) (string, error) {
	return data, nil
}

func (InlineStorage) Delete(context.Context, string) error { return nil }

var _ ports.ImageStorage = (*InlineStorage)(nil)
