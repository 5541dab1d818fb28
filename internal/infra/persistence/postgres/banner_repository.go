package postgres

import (
	"context"
	"time"

	"qualifica/internal/domain/entity"
	"qualifica/internal/domain/repository"
	"qualifica/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bannerRepository implements the repository.BannerRepository interface.
type bannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository is the constructor for bannerRepository.
func NewBannerRepository(db *gorm.DB) repository.BannerRepository {
	return &bannerRepository{
		db: db,
	}
}

// FindByID retrieves a banner by its unique ID.
func (repo *bannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error) {
	var bannerM model.BannerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bannerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBannerNotFound
		}

		return nil, errors.Wrap(err, "failed to find banner by ID")
	}

	return toBannerDomain(&bannerM), nil
}

// FindActive retrieves the active banners, position ascending.
func (repo *bannerRepository) FindActive(ctx context.Context) ([]*entity.Banner, error) {
	var bannerModels []*model.BannerModel

	if err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("position ASC").
		Find(&bannerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active banners")
	}

	return toBannerDomainSlice(bannerModels), nil
}

// FindAll retrieves every banner: active first, then by position, then newest first.
func (repo *bannerRepository) FindAll(ctx context.Context) ([]*entity.Banner, error) {
	var bannerModels []*model.BannerModel

	if err := repo.db.WithContext(ctx).
		Order("active DESC").
		Order("position ASC").
		Order("created_at DESC").
		Find(&bannerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find banners")
	}

	return toBannerDomainSlice(bannerModels), nil
}

// Create persists a new banner.
func (repo *bannerRepository) Create(ctx context.Context, banner *entity.Banner) error {
	bannerM := fromBannerDomain(banner)

	if err := repo.db.WithContext(ctx).Create(bannerM).Error; err != nil {
		return errors.Wrap(err, "failed to create banner")
	}

	banner.CreatedAt = bannerM.CreatedAt
	banner.UpdatedAt = bannerM.UpdatedAt

	return nil
}

// Update modifies an existing banner. Visits is excluded: the counter only
// moves through IncrementVisits.
func (repo *bannerRepository) Update(ctx context.Context, banner *entity.Banner) error {
	bannerM := fromBannerDomain(banner)

	result := repo.db.WithContext(ctx).
		Model(&model.BannerModel{}).
		Where("id = ?", banner.ID).
		Updates(map[string]any{
			"title":      bannerM.Title,
			"image_url":  bannerM.ImageURL,
			"link_url":   bannerM.LinkURL,
			"active":     bannerM.Active,
			"updated_at": bannerM.UpdatedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update banner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBannerNotFound
	}

	return nil
}

// Delete hard-deletes a banner.
func (repo *bannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BannerModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete banner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBannerNotFound
	}

	return nil
}

// DeactivateByPosition clears the active flag of any active banner in the position.
func (repo *bannerRepository) DeactivateByPosition(ctx context.Context, position entity.BannerPosition) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.BannerModel{}).
		Where("position = ? AND active = ?", position.String(), true).
		Updates(map[string]any{
			"active":     false,
			"updated_at": time.Now(),
		}).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate banners by position")
	}

	return nil
}

// IncrementVisits bumps the access counter by one.
func (repo *bannerRepository) IncrementVisits(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BannerModel{}).
		Where("id = ?", id).
		UpdateColumn("visits", gorm.Expr("visits + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment banner visits")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBannerNotFound
	}

	return nil
}

func fromBannerDomain(banner *entity.Banner) *model.BannerModel {
	return &model.BannerModel{
		ID:        banner.ID,
		Position:  banner.Position.String(),
		Title:     banner.Title,
		ImageURL:  banner.ImageURL,
		LinkURL:   banner.LinkURL,
		Active:    banner.Active,
		Visits:    banner.Visits,
		CreatedAt: banner.CreatedAt,
		UpdatedAt: banner.UpdatedAt,
	}
}

func toBannerDomain(bannerM *model.BannerModel) *entity.Banner {
	return &entity.Banner{
		ID:        bannerM.ID,
		Position:  entity.BannerPosition(bannerM.Position),
		Title:     bannerM.Title,
		ImageURL:  bannerM.ImageURL,
		LinkURL:   bannerM.LinkURL,
		Active:    bannerM.Active,
		Visits:    bannerM.Visits,
		CreatedAt: bannerM.CreatedAt,
		UpdatedAt: bannerM.UpdatedAt,
	}
}

func toBannerDomainSlice(bannerModels []*model.BannerModel) []*entity.Banner {
	banners := make([]*entity.Banner, 0, len(bannerModels))
	for _, bannerM := range bannerModels {
		banners = append(banners, toBannerDomain(bannerM))
	}

	return banners
}
