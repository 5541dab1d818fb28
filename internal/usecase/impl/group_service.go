package impl

import (
	"context"
	"fmt"
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

type groupService struct {
	txManager  repository.TransactionManager
	groupRepo  repository.GroupRepository
	ratingRepo repository.RatingRepository
	guard      service.AccessGuard
}

// GroupServiceParams holds dependencies for GroupService, injected by Fx.
type GroupServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	GroupRepo  repository.GroupRepository
	RatingRepo repository.RatingRepository
	Guard      service.AccessGuard
}

// NewGroupService creates a new group registry instance.
func NewGroupService(params GroupServiceParams) usecase.GroupUsecase {
	return &groupService{
		txManager:  params.TxManager,
		groupRepo:  params.GroupRepo,
		ratingRepo: params.RatingRepo,
		guard:      params.Guard,
	}
}

func (s *groupService) ListForPrincipal(ctx context.Context, principal *entity.Principal) ([]*entity.Group, error) {
	if err := s.guard.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	if principal.IsSuperAdmin() {
		groups, err := s.groupRepo.FindAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list groups")
		}

		return groups, nil
	}

	if len(principal.GroupIDs) == 0 {
		return []*entity.Group{}, nil
	}

	groups, err := s.groupRepo.FindByIDs(ctx, principal.GroupIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list member groups")
	}

	return groups, nil
}

func (s *groupService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateGroupInput) (*entity.Group, error) {
	if err := s.guard.RequireSuperAdmin(principal); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidation.WithMessage("Nome do grupo é obrigatório")
	}

	now := time.Now()
	group := &entity.Group{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		OwnerName:   strings.TrimSpace(input.OwnerName),
		OwnerPhone:  entity.NormalizePhone(input.OwnerPhone),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, errors.Wrap(err, "failed to create group")
	}

	return group, nil
}

func (s *groupService) Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.UpdateGroupInput) (*entity.Group, error) {
	if err := s.guard.RequireSuperAdmin(principal); err != nil {
		return nil, err
	}

	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, domainerrors.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidation.WithMessage("Nome do grupo é obrigatório")
		}
		group.Name = name
	}
	if input.Description != nil {
		group.Description = strings.TrimSpace(*input.Description)
	}
	if input.OwnerName != nil {
		group.OwnerName = strings.TrimSpace(*input.OwnerName)
	}
	if input.OwnerPhone != nil {
		group.OwnerPhone = entity.NormalizePhone(*input.OwnerPhone)
	}
	group.UpdatedAt = time.Now()

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, errors.Wrap(err, "failed to update group")
	}

	return group, nil
}

// Delete removes a group, refusing while any rating still references it.
// Soft-deleted ratings count as references too: removing the group would
// orphan their audit trail.
func (s *groupService) Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	if err := s.guard.RequireSuperAdmin(principal); err != nil {
		return err
	}

	if _, err := s.groupRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return domainerrors.ErrGroupNotFound
		}

		return errors.Wrap(err, "failed to find group")
	}

	// Count and delete share one transaction so a rating recorded in between
	// cannot slip past the reference check. The FK violation mapping covers
	// databases that do not serialize the two statements.
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		count, err := factory.RatingRepo().CountByGroup(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count group ratings")
		}
		if count > 0 {
			return domainerrors.ErrGroupHasRatings.WithMessage(
				fmt.Sprintf("Grupo possui %d qualificação(ões) vinculada(s) e não pode ser excluído", count))
		}

		return factory.GroupRepo().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrGroupHasRatings) {
			return err
		}
		if errors.Is(err, repository.ErrGroupReferenced) {
			return domainerrors.ErrGroupHasRatings
		}
		if errors.Is(err, repository.ErrGroupNotFound) {
			return domainerrors.ErrGroupNotFound
		}

		return errors.Wrap(err, "failed to delete group")
	}

	return nil
}
