package service

import "context"

// ImageStorage defines the interface for the durable image store. The
// implementation decides where bytes land (object storage, local bucket);
// callers only get back a durable, publicly fetchable URL.
type ImageStorage interface {
	// Save writes the image bytes under the given logical folder and returns
	// the public URL of the stored object.
	Save(ctx context.Context, data []byte, contentType, folder string) (string, error)
}
