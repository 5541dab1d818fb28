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

type adminService struct {
	txManager repository.TransactionManager
	adminRepo repository.AdminRepository
	groupRepo repository.GroupRepository
	hasher    service.PasswordHasher
	guard     service.AccessGuard
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AdminRepo repository.AdminRepository
	GroupRepo repository.GroupRepository
	Hasher    service.PasswordHasher
	Guard     service.AccessGuard
}

// NewAdminService creates a new administrator registry instance.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		adminRepo: params.AdminRepo,
		groupRepo: params.GroupRepo,
		hasher:    params.Hasher,
		guard:     params.Guard,
	}
}

func (s *adminService) List(ctx context.Context, principal *entity.Principal) ([]*entity.Admin, error) {
	if err := s.guard.RequireSuperAdmin(principal); err != nil {
		return nil, err
	}

	admins, err := s.adminRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admins")
	}

	return admins, nil
}

func (s *adminService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateAdminInput) (*entity.Admin, error) {
	if err := s.guard.RequireSuperAdmin(principal); err != nil {
		return nil, err
	}

	groupIDs, err := parseGroupIDs(input.GroupIDs)
	if err != nil {
		return nil, err
	}
	if err := s.checkGroupsExist(ctx, groupIDs); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := time.Now()
	admin := &entity.Admin{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.AdminRepo().Create(ctx, admin); err != nil {
			return err
		}
		if len(groupIDs) == 0 {
			return nil
		}

		return factory.AdminRepo().ReplaceGroups(ctx, admin.ID, groupIDs)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAdminEmail) {
			return nil, domainerrors.ErrEmailTaken
		}

		return nil, errors.Wrap(err, "failed to create admin")
	}

	created, err := s.adminRepo.FindByID(ctx, admin.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload created admin")
	}

	return created, nil
}

func (s *adminService) Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.UpdateAdminInput) error {
	if err := s.guard.RequireSuperAdmin(principal); err != nil {
		return err
	}

	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domainerrors.ErrAdminNotFound
		}

		return errors.Wrap(err, "failed to find admin")
	}

	// SUPER_ADMIN accounts are not managed through this path.
	if admin.Role == entity.RoleSuperAdmin {
		if input.Active != nil || input.GroupIDs != nil {
			return domainerrors.ErrForbidden
		}
	}

	if input.Name != nil {
		admin.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		admin.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}
		admin.PasswordHash = hash
	}
	if input.Active != nil {
		admin.Active = *input.Active
	}
	admin.UpdatedAt = time.Now()

	var groupIDs []uuid.UUID
	if input.GroupIDs != nil {
		groupIDs, err = parseGroupIDs(*input.GroupIDs)
		if err != nil {
			return err
		}
		if err := s.checkGroupsExist(ctx, groupIDs); err != nil {
			return err
		}
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.AdminRepo().Update(ctx, admin); err != nil {
			return err
		}
		if input.GroupIDs == nil {
			return nil
		}

		return factory.AdminRepo().ReplaceGroups(ctx, admin.ID, groupIDs)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAdminEmail) {
			return domainerrors.ErrEmailTaken
		}

		return errors.Wrap(err, "failed to update admin")
	}

	return nil
}

func (s *adminService) Deactivate(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	if err := s.guard.RequireSuperAdmin(principal); err != nil {
		return err
	}

	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domainerrors.ErrAdminNotFound
		}

		return errors.Wrap(err, "failed to find admin")
	}
	if admin.Role == entity.RoleSuperAdmin {
		return domainerrors.ErrForbidden
	}
	if !admin.Active {
		return nil
	}

	admin.Active = false
	admin.UpdatedAt = time.Now()
	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to deactivate admin")
	}

	return nil
}

// Bootstrap provisions the initial SUPER_ADMIN account. Safe to run on every
// startup: an existing account with the same email short-circuits.
func (s *adminService) Bootstrap(ctx context.Context, name, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	_, err := s.adminRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return errors.Wrap(err, "failed to check bootstrap account")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash bootstrap password")
	}

	now := time.Now()
	admin := &entity.Admin{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleSuperAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		// A concurrent instance may have won the race; that is still a
		// bootstrapped system.
		if errors.Is(err, repository.ErrDuplicateAdminEmail) {
			return nil
		}

		return errors.Wrap(err, "failed to create bootstrap account")
	}

	return nil
}

func parseGroupIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	seen := make(map[uuid.UUID]struct{}, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, domainerrors.ErrValidation.WithMessage("Identificador de grupo inválido")
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, nil
}

func (s *adminService) checkGroupsExist(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	groups, err := s.groupRepo.FindByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to verify groups")
	}
	if len(groups) != len(ids) {
		return domainerrors.ErrGroupNotFound
	}

	return nil
}
