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

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// FindByID retrieves an admin by their unique ID, with group links.
func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).
		Preload("Groups").
		Where("id = ?", id).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by ID")
	}

	return toAdminDomain(&adminM), nil
}

// FindByEmail retrieves an admin by their lower-cased email, with group links.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).
		Preload("Groups").
		Where("email = ?", email).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return toAdminDomain(&adminM), nil
}

// FindAll retrieves every admin, newest first, with group links.
func (repo *adminRepository) FindAll(ctx context.Context) ([]*entity.Admin, error) {
	var adminModels []*model.AdminModel

	if err := repo.db.WithContext(ctx).
		Preload("Groups").
		Order("created_at DESC").
		Find(&adminModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find admins")
	}

	admins := make([]*entity.Admin, 0, len(adminModels))
	for _, adminM := range adminModels {
		admins = append(admins, toAdminDomain(adminM))
	}

	return admins, nil
}

// Create persists a new admin. A colliding email surfaces as
// ErrDuplicateAdminEmail via the unique index.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).
		Omit("Groups").
		Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAdminEmail
		}

		return errors.Wrap(err, "failed to create admin")
	}

	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

// Update modifies an admin's own fields; memberships go through ReplaceGroups.
func (repo *adminRepository) Update(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	result := repo.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("id = ?", admin.ID).
		Updates(map[string]any{
			"name":          adminM.Name,
			"email":         adminM.Email,
			"password_hash": adminM.PasswordHash,
			"active":        adminM.Active,
			"updated_at":    adminM.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateAdminEmail
		}

		return errors.Wrap(result.Error, "failed to update admin")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

// ReplaceGroups swaps the admin's memberships for the given set.
func (repo *adminRepository) ReplaceGroups(ctx context.Context, adminID uuid.UUID, groupIDs []uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("admin_model_id = ?", adminID).
		Delete(&model.AdminGroupModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear admin groups")
	}

	if len(groupIDs) == 0 {
		return nil
	}

	links := make([]model.AdminGroupModel, 0, len(groupIDs))
	for _, groupID := range groupIDs {
		links = append(links, model.AdminGroupModel{
			AdminModelID: adminID,
			GroupModelID: groupID,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&links).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGroupNotFound
		}

		return errors.Wrap(err, "failed to link admin groups")
	}

	return nil
}

func fromAdminDomain(admin *entity.Admin) *model.AdminModel {
	return &model.AdminModel{
		ID:           admin.ID,
		Name:         admin.Name,
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
		Role:         admin.Role.String(),
		Active:       admin.Active,
		CreatedAt:    admin.CreatedAt,
		UpdatedAt:    admin.UpdatedAt,
	}
}

func toAdminDomain(adminM *model.AdminModel) *entity.Admin {
	groups := make([]entity.GroupRef, 0, len(adminM.Groups))
	for _, groupM := range adminM.Groups {
		groups = append(groups, entity.GroupRef{ID: groupM.ID, Name: groupM.Name})
	}

	return &entity.Admin{
		ID:           adminM.ID,
		Name:         adminM.Name,
		Email:        adminM.Email,
		PasswordHash: adminM.PasswordHash,
		Role:         entity.Role(adminM.Role),
		Active:       adminM.Active,
		Groups:       groups,
		CreatedAt:    adminM.CreatedAt,
		UpdatedAt:    adminM.UpdatedAt,
	}
}
