package impl

import (
	"context"
	"strings"
	"time"

	"qualifica/internal/domain/entity"
	domainerrors "qualifica/internal/domain/errors"
	"qualifica/internal/domain/repository"
	"qualifica/internal/domain/service"
	"qualifica/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type bannerService struct {
	txManager  repository.TransactionManager
	bannerRepo repository.BannerRepository
	guard      service.AccessGuard
}

// BannerServiceParams holds dependencies for BannerService, injected by Fx.
type BannerServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	BannerRepo repository.BannerRepository
	Guard      service.AccessGuard
}

// NewBannerService creates a new banner registry instance.
func NewBannerService(params BannerServiceParams) usecase.BannerUsecase {
	return &bannerService{
		txManager:  params.TxManager,
		bannerRepo: params.BannerRepo,
		guard:      params.Guard,
	}
}

func (s *bannerService) ListActive(ctx context.Context) ([]*entity.Banner, error) {
	banners, err := s.bannerRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active banners")
	}

	return banners, nil
}

func (s *bannerService) ListAll(ctx context.Context, principal *entity.Principal) ([]*entity.Banner, error) {
	if err := s.guard.RequireSuperAdmin(principal); err != nil {
		return nil, err
	}

	banners, err := s.bannerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list banners")
	}

	return banners, nil
}

func (s *bannerService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateBannerInput) (*entity.Banner, error) {
	if err := s.guard.RequireSuperAdmin(principal); err != nil {
		return nil, err
	}

	position := entity.BannerPosition(strings.ToUpper(strings.TrimSpace(input.Position)))
	if !position.IsValid() {
		return nil, domainerrors.ErrInvalidPosition
	}

	now := time.Now()
	banner := &entity.Banner{
		ID:        uuid.New(),
		Position:  position,
		Title:     strings.TrimSpace(input.Title),
		ImageURL:  input.ImageURL,
		LinkURL:   input.LinkURL,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Deactivation and insertion commit together so the position never
	// carries two active banners.
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.BannerRepo().DeactivateByPosition(ctx, position); err != nil {
			return err
		}

		return factory.BannerRepo().Create(ctx, banner)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create banner")
	}

	return banner, nil
}

func (s *bannerService) Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.UpdateBannerInput) (*entity.Banner, error) {
	if err := s.guard.RequireSuperAdmin(principal); err != nil {
		return nil, err
	}

	banner, err := s.bannerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBannerNotFound) {
			return nil, domainerrors.ErrBannerNotFound
		}

		return nil, errors.Wrap(err, "failed to find banner")
	}

	if input.Title != nil {
		banner.Title = strings.TrimSpace(*input.Title)
	}
	if input.ImageURL != nil {
		banner.ImageURL = *input.ImageURL
	}
	if input.LinkURL != nil {
		banner.LinkURL = *input.LinkURL
	}

	activating := input.Active != nil && *input.Active && !banner.Active
	if input.Active != nil {
		banner.Active = *input.Active
	}
	banner.UpdatedAt = time.Now()

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if activating {
			if err := factory.BannerRepo().DeactivateByPosition(ctx, banner.Position); err != nil {
				return err
			}
		}

		return factory.BannerRepo().Update(ctx, banner)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update banner")
	}

	return banner, nil
}

func (s *bannerService) Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	if err := s.guard.RequireSuperAdmin(principal); err != nil {
		return err
	}

	if _, err := s.bannerRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBannerNotFound) {
			return domainerrors.ErrBannerNotFound
		}

		return errors.Wrap(err, "failed to find banner")
	}

	if err := s.bannerRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete banner")
	}

	return nil
}

func (s *bannerService) RegisterVisit(ctx context.Context, id uuid.UUID) error {
	if err := s.bannerRepo.IncrementVisits(ctx, id); err != nil {
		return errors.Wrap(err, "failed to increment banner visits")
	}

	return nil
}
