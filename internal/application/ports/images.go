package ports

import "context"

// ImageStorage stores uploaded images and returns their public URL.
// Upload accepts the raw payload sent by the client (a base64 data URL).
type ImageStorage interface {
	Upload(ctx context.Context, data string) (url string, err error)
	// Delete removes a previously uploaded image. Unknown URLs are not
	// an error; deletion is best-effort.
	Delete(ctx context.Context, url string) error
}
