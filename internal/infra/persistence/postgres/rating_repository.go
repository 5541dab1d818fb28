package postgres

import (
	"context"

	"qualifica/internal/domain/entity"
	"qualifica/internal/domain/repository"
	"qualifica/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ratingRepository implements the repository.RatingRepository interface.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{
		db: db,
	}
}

// FindByID retrieves a rating by its unique ID, soft-deleted included.
func (repo *ratingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	var ratingM model.RatingModel

	if err := repo.db.WithContext(ctx).
		Preload("Seller").
		Preload("Group").
		Preload("RecordedBy").
		Where("id = ?", id).
		First(&ratingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating by ID")
	}

	return toRatingDomain(&ratingM), nil
}

// FindActiveBySeller retrieves the non-deleted ratings of a seller, newest first.
func (repo *ratingRepository) FindActiveBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Rating, error) {
	var ratingModels []*model.RatingModel

	if err := repo.db.WithContext(ctx).
		Preload("Group").
		Where("seller_id = ? AND deleted_at IS NULL", sellerID).
		Order("created_at DESC").
		Find(&ratingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find ratings by seller")
	}

	return toRatingDomainSlice(ratingModels), nil
}

// List retrieves a page of non-deleted ratings matching the filter, newest
// first, together with the total match count.
func (repo *ratingRepository) List(ctx context.Context, filter repository.RatingFilter, offset, limit int) ([]*entity.Rating, int64, error) {
	var total int64
	if err := repo.listQuery(ctx, filter).
		Model(&model.RatingModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count ratings")
	}

	var ratingModels []*model.RatingModel
	if err := repo.listQuery(ctx, filter).
		Preload("Seller").
		Preload("Group").
		Preload("RecordedBy").
		Order("ratings.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&ratingModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list ratings")
	}

	return toRatingDomainSlice(ratingModels), total, nil
}

func (repo *ratingRepository) listQuery(ctx context.Context, filter repository.RatingFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).
		Table("ratings").
		Where("ratings.deleted_at IS NULL")

	if len(filter.GroupIDs) > 0 {
		query = query.Where("ratings.group_id IN ?", filter.GroupIDs)
	}
	if filter.Category != "" {
		query = query.Where("ratings.category = ?", filter.Category.String())
	}
	if filter.SellerPhoneContains != "" {
		query = query.
			Joins("JOIN sellers ON sellers.id = ratings.seller_id").
			Where("sellers.phone LIKE ?", "%"+filter.SellerPhoneContains+"%")
	}

	return query
}

// Create persists a new rating.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		return errors.Wrap(err, "failed to create rating")
	}

	rating.CreatedAt = ratingM.CreatedAt

	return nil
}

// SoftDelete stamps the removal audit pair on a still-active rating.
func (repo *ratingRepository) SoftDelete(ctx context.Context, id uuid.UUID, deletion entity.Deletion) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]any{
			"deleted_at":    deletion.At,
			"deleted_by_id": deletion.By,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft-delete rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRatingNotFound
	}

	return nil
}

// CountByGroup counts all ratings under a group, soft-deleted included.
func (repo *ratingRepository) CountByGroup(ctx context.Context, groupID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Where("group_id = ?", groupID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count ratings by group")
	}

	return count, nil
}

func fromRatingDomain(rating *entity.Rating) *model.RatingModel {
	ratingM := &model.RatingModel{
		ID:           rating.ID,
		SellerID:     rating.SellerID,
		GroupID:      rating.GroupID,
		RecordedByID: rating.RecordedByID,
		BuyerPhone:   rating.BuyerPhone,
		BuyerName:    rating.BuyerName,
		Category:     rating.Category.String(),
		Stars:        rating.Stars,
		PhotoURL:     rating.PhotoURL,
		CreatedAt:    rating.CreatedAt,
	}
	if rating.Deletion != nil {
		deletedAt := rating.Deletion.At
		deletedBy := rating.Deletion.By
		ratingM.DeletedAt = &deletedAt
		ratingM.DeletedByID = &deletedBy
	}

	return ratingM
}

func toRatingDomain(ratingM *model.RatingModel) *entity.Rating {
	rating := &entity.Rating{
		ID:           ratingM.ID,
		SellerID:     ratingM.SellerID,
		GroupID:      ratingM.GroupID,
		RecordedByID: ratingM.RecordedByID,
		BuyerPhone:   ratingM.BuyerPhone,
		BuyerName:    ratingM.BuyerName,
		Category:     entity.Category(ratingM.Category),
		Stars:        ratingM.Stars,
		PhotoURL:     ratingM.PhotoURL,
		CreatedAt:    ratingM.CreatedAt,
	}
	if ratingM.DeletedAt != nil {
		deletion := &entity.Deletion{At: *ratingM.DeletedAt}
		if ratingM.DeletedByID != nil {
			deletion.By = *ratingM.DeletedByID
		}
		rating.Deletion = deletion
	}
	if ratingM.Seller != nil {
		rating.Seller = toSellerDomain(ratingM.Seller)
	}
	if ratingM.Group != nil {
		rating.Group = &entity.GroupRef{ID: ratingM.Group.ID, Name: ratingM.Group.Name}
	}
	if ratingM.RecordedBy != nil {
		rating.RecordedByName = ratingM.RecordedBy.Name
	}

	return rating
}

func toRatingDomainSlice(ratingModels []*model.RatingModel) []*entity.Rating {
	ratings := make([]*entity.Rating, 0, len(ratingModels))
	for _, ratingM := range ratingModels {
		ratings = append(ratings, toRatingDomain(ratingM))
	}

	return ratings
}
