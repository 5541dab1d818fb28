package impl

import (
	"context"
	"strings"

	"qualifica/internal/domain/entity"
	domainerrors "qualifica/internal/domain/errors"
	"qualifica/internal/domain/repository"
	"qualifica/internal/domain/service"
	"qualifica/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type authService struct {
	adminRepo repository.AdminRepository
	hasher    service.PasswordHasher
	tokens    service.TokenService
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AdminRepo repository.AdminRepository
	Hasher    service.PasswordHasher
	Tokens    service.TokenService
}

// NewAuthService creates a new authentication service instance.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		adminRepo: params.AdminRepo,
		hasher:    params.Hasher,
		tokens:    params.Tokens,
	}
}

// Login validates credentials and issues a session token. A missing account,
// an inactive account and a wrong password all yield the same error, so the
// response does not reveal which part failed.
func (s *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidation.WithMessage("E-mail e senha são obrigatórios")
	}

	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	if !admin.Active {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !s.hasher.Check(input.Password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	principal := &entity.Principal{
		ID:       admin.ID,
		Name:     admin.Name,
		Role:     admin.Role,
		GroupIDs: admin.GroupIDs(),
	}

	token, err := s.tokens.GenerateToken(principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return &usecase.LoginOutput{
		Token:     token,
		Principal: principal,
		Name:      admin.Name,
		Email:     admin.Email,
		Role:      admin.Role.String(),
	}, nil
}
