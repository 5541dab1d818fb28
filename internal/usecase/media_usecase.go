package usecase

import (
	"context"

	"qualifica/internal/domain/entity"
)

// Upload kinds map to the logical storage folders.
const (
	UploadKindRating  = "qualificacao"
	UploadKindProfile = "perfil"
)

// MaxUploadSize caps accepted image uploads at 5MB, checked before any
// storage round-trip.
const MaxUploadSize = 5 * 1024 * 1024

// UploadInput carries an image upload.
type UploadInput struct {
	Kind        string // qualificacao or perfil.
	ContentType string // Must be an image MIME type.
	Data        []byte
}

// UploadOutput carries the public URL of the stored image.
type UploadOutput struct {
	URL string `json:"url"`
}

// MediaUsecase defines the image upload use case.
type MediaUsecase interface {
	// Upload validates kind, MIME type and size, stores the image and
	// returns its durable public URL. Requires an authenticated principal.
	Upload(ctx context.Context, principal *entity.Principal, input *UploadInput) (*UploadOutput, error)
}
