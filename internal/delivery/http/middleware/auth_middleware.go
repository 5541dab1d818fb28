// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"strings"

	"qualifica/internal/domain/entity"
	"qualifica/internal/domain/service"

	"github.com/labstack/echo/v4"

	"qualifica/internal/delivery/http/response"
)

const principalContextKey = "principal"

// AuthMiddleware validates session tokens and makes the principal available
// to handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid Bearer session token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Não autenticado")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Formato de token inválido")
		}

		principal, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Sessão inválida ou expirada")
		}

		c.Set(principalContextKey, principal)

		return next(c)
	}
}

// GetPrincipal retrieves the authenticated principal from the request context.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	principal, ok := c.Get(principalContextKey).(*entity.Principal)

	return principal, ok
}
