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

// groupRepository implements the repository.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{
		db: db,
	}
}

// FindByID retrieves a group by its unique ID.
func (repo *groupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var groupM model.GroupModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group by ID")
	}

	return toGroupDomain(&groupM), nil
}

// FindAll retrieves every group, ordered by name.
func (repo *groupRepository) FindAll(ctx context.Context) ([]*entity.Group, error) {
	var groupModels []*model.GroupModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&groupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find groups")
	}

	return toGroupDomainSlice(groupModels), nil
}

// FindByIDs retrieves the groups matching the given ids, ordered by name.
func (repo *groupRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Group, error) {
	if len(ids) == 0 {
		return []*entity.Group{}, nil
	}

	var groupModels []*model.GroupModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("name ASC").
		Find(&groupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find groups by IDs")
	}

	return toGroupDomainSlice(groupModels), nil
}

// Create persists a new group.
func (repo *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	groupM := fromGroupDomain(group)

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		return errors.Wrap(err, "failed to create group")
	}

	group.CreatedAt = groupM.CreatedAt
	group.UpdatedAt = groupM.UpdatedAt

	return nil
}

// Update modifies an existing group.
func (repo *groupRepository) Update(ctx context.Context, group *entity.Group) error {
	groupM := fromGroupDomain(group)

	result := repo.db.WithContext(ctx).
		Model(&model.GroupModel{}).
		Where("id = ?", group.ID).
		Updates(map[string]any{
			"name":        groupM.Name,
			"description": groupM.Description,
			"owner_name":  groupM.OwnerName,
			"owner_phone": groupM.OwnerPhone,
			"updated_at":  groupM.UpdatedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update group")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

// Delete hard-deletes a group. A foreign key violation surfaces as
// ErrGroupReferenced, covering the window between the caller's rating count
// and the delete itself.
func (repo *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GroupModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrGroupReferenced
		}

		return errors.Wrap(result.Error, "failed to delete group")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

func fromGroupDomain(group *entity.Group) *model.GroupModel {
	return &model.GroupModel{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		OwnerName:   group.OwnerName,
		OwnerPhone:  group.OwnerPhone,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}

func toGroupDomain(groupM *model.GroupModel) *entity.Group {
	return &entity.Group{
		ID:          groupM.ID,
		Name:        groupM.Name,
		Description: groupM.Description,
		OwnerName:   groupM.OwnerName,
		OwnerPhone:  groupM.OwnerPhone,
		CreatedAt:   groupM.CreatedAt,
		UpdatedAt:   groupM.UpdatedAt,
	}
}

func toGroupDomainSlice(groupModels []*model.GroupModel) []*entity.Group {
	groups := make([]*entity.Group, 0, len(groupModels))
	for _, groupM := range groupModels {
		groups = append(groups, toGroupDomain(groupM))
	}

	return groups
}
