package postgres

import (
	"context"
	"time"

	"qualifica/internal/domain/entity"
	"qualifica/internal/domain/repository"
	"qualifica/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sellerRepository implements the repository.SellerRepository interface.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{
		db: db,
	}
}

// FindByPhone retrieves a seller by their normalized phone number.
func (repo *sellerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Seller, error) {
	var sellerM model.SellerModel

	if err := repo.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&sellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by phone")
	}

	return toSellerDomain(&sellerM), nil
}

// Create persists a new seller. A concurrent creation of the same phone
// surfaces as ErrDuplicateSeller. The insert tolerates the conflict instead
// of erroring, so a surrounding transaction stays usable for the re-read
// (postgres aborts the whole transaction on a failed INSERT).
func (repo *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone"}},
			DoNothing: true,
		}).
		Create(sellerM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSeller
		}

		return errors.Wrap(result.Error, "failed to create seller")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDuplicateSeller
	}

	seller.CreatedAt = sellerM.CreatedAt
	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// UpdatePhoto sets the profile photo of the seller with the given phone.
func (repo *sellerRepository) UpdatePhoto(ctx context.Context, phone, photoURL string) (*entity.Seller, error) {
	var sellerM model.SellerModel

	if err := repo.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&sellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by phone")
	}

	sellerM.PhotoURL = photoURL
	sellerM.UpdatedAt = time.Now()

	if err := repo.db.WithContext(ctx).
		Model(&model.SellerModel{}).
		Where("id = ?", sellerM.ID).
		Updates(map[string]any{
			"photo_url":  sellerM.PhotoURL,
			"updated_at": sellerM.UpdatedAt,
		}).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update seller photo")
	}

	return toSellerDomain(&sellerM), nil
}

func fromSellerDomain(seller *entity.Seller) *model.SellerModel {
	return &model.SellerModel{
		ID:        seller.ID,
		Phone:     seller.Phone,
		Name:      seller.Name,
		PhotoURL:  seller.PhotoURL,
		CreatedAt: seller.CreatedAt,
		UpdatedAt: seller.UpdatedAt,
	}
}

func toSellerDomain(sellerM *model.SellerModel) *entity.Seller {
	return &entity.Seller{
		ID:        sellerM.ID,
		Phone:     sellerM.Phone,
		Name:      sellerM.Name,
		PhotoURL:  sellerM.PhotoURL,
		CreatedAt: sellerM.CreatedAt,
		UpdatedAt: sellerM.UpdatedAt,
	}
}
