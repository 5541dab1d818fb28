// Package usecase defines the application's use case interfaces and their
// input/output DTOs. Handlers depend on these interfaces, never on the
// implementations in impl.
package usecase

import (
	"context"

	"qualifica/internal/domain/entity"
)

// LoginInput carries the credentials of a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

// LoginOutput carries the issued session token and the principal it represents.
type LoginOutput struct {
	Token     string            `json:"token"`
	Principal *entity.Principal `json:"-"`
	Name      string            `json:"nome"`
	Email     string            `json:"email"`
	Role      string            `json:"papel"`
}

// AuthUsecase defines the authentication use cases.
type AuthUsecase interface {
	// Login validates the credentials against the administrator registry and,
	// on success, issues a session token. Inactive accounts and wrong
	// credentials are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
