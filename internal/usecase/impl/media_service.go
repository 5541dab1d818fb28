package impl

import (
	"context"
	"strings"

	"qualifica/internal/domain/entity"
	domainerrors "qualifica/internal/domain/errors"
	"qualifica/internal/domain/service"
	"qualifica/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// uploadFolders maps logical upload kinds to bucket folders.
var uploadFolders = map[string]string{
	usecase.UploadKindRating:  "qualificacoes",
	usecase.UploadKindProfile: "perfis",
}

type mediaService struct {
	storage service.ImageStorage
	guard   service.AccessGuard
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Storage service.ImageStorage
	Guard   service.AccessGuard
}

// NewMediaService creates a new image upload instance.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		storage: params.Storage,
		guard:   params.Guard,
	}
}

// Upload validates the payload before any storage round-trip.
func (s *mediaService) Upload(ctx context.Context, principal *entity.Principal, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	if err := s.guard.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	folder, ok := uploadFolders[strings.ToLower(strings.TrimSpace(input.Kind))]
	if !ok {
		return nil, domainerrors.ErrValidation.WithMessage("Tipo de upload deve ser qualificacao ou perfil")
	}
	if !strings.HasPrefix(input.ContentType, "image/") {
		return nil, domainerrors.ErrUploadNotImage
	}
	if len(input.Data) == 0 {
		return nil, domainerrors.ErrValidation.WithMessage("Arquivo é obrigatório")
	}
	if len(input.Data) > usecase.MaxUploadSize {
		return nil, domainerrors.ErrUploadTooLarge
	}

	url, err := s.storage.Save(ctx, input.Data, input.ContentType, folder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store image")
	}

	return &usecase.UploadOutput{URL: url}, nil
}
