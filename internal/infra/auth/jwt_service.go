package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"qualifica/config"
	"qualifica/internal/domain/entity"
	"qualifica/internal/domain/service"
)

// ErrInvalidToken is returned when a session token is malformed, expired or
// carries an unexpected signature.
var ErrInvalidToken = errors.New("invalid session token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("jwt session secret must be provided")
	}

	ttl := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: cfg.SecretKey.Session,
		ttl:    ttl,
	}, nil
}

// GenerateToken creates a signed session token carrying the principal's
// identity, role and group memberships.
func (s *jwtService) GenerateToken(principal *entity.Principal) (string, error) {
	groupIDs := make([]string, 0, len(principal.GroupIDs))
	for _, id := range principal.GroupIDs {
		groupIDs = append(groupIDs, id.String())
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       principal.ID.String(),
		"name":      principal.Name,
		"role":      principal.Role.String(),
		"group_ids": groupIDs,
		"iat":       now.Unix(),
		"exp":       now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken parses and verifies a session token and rebuilds the principal.
func (s *jwtService) ValidateToken(tokenString string) (*entity.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidToken
	}

	roleClaim, _ := claims["role"].(string)
	role := entity.Role(roleClaim)
	if !role.IsValid() {
		return nil, ErrInvalidToken
	}

	name, _ := claims["name"].(string)

	var groupIDs []uuid.UUID
	if raw, ok := claims["group_ids"].([]any); ok {
		groupIDs = make([]uuid.UUID, 0, len(raw))
		for _, item := range raw {
			str, ok := item.(string)
			if !ok {
				return nil, ErrInvalidToken
			}
			groupID, err := uuid.Parse(str)
			if err != nil {
				return nil, ErrInvalidToken
			}
			groupIDs = append(groupIDs, groupID)
		}
	}

	return &entity.Principal{
		ID:       id,
		Name:     name,
		Role:     role,
		GroupIDs: groupIDs,
	}, nil
}
