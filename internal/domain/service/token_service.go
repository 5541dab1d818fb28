package service

import (
	"qualifica/internal/domain/entity"
)

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken issues a signed session token carrying the principal.
	GenerateToken(principal *entity.Principal) (string, error)

	// ValidateToken parses and verifies a token string, returning the
	// principal it carries.
	ValidateToken(tokenString string) (*entity.Principal, error)
}
