// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"qualifica/internal/domain/entity"
	domainerrors "qualifica/internal/domain/errors"
	"qualifica/internal/domain/service"

	"github.com/google/uuid"
)

// accessGuard is the single concrete authorization decision point.
type accessGuard struct{}

// NewAccessGuard is the constructor for accessGuard.
func NewAccessGuard() service.AccessGuard {
	return &accessGuard{}
}

// RequirePrincipal fails with Unauthorized when there is no principal.
func (g *accessGuard) RequirePrincipal(p *entity.Principal) error {
	if p == nil {
		return domainerrors.ErrUnauthorized
	}

	return nil
}

// RequireSuperAdmin allows only SUPER_ADMIN principals.
func (g *accessGuard) RequireSuperAdmin(p *entity.Principal) error {
	if p == nil {
		return domainerrors.ErrUnauthorized
	}
	if p.Role != entity.RoleSuperAdmin {
		return domainerrors.ErrForbidden
	}

	return nil
}

// RequireGroupScope allows SUPER_ADMIN principals everywhere and regular
// admins only inside their membership set.
func (g *accessGuard) RequireGroupScope(p *entity.Principal, groupID uuid.UUID) error {
	if p == nil {
		return domainerrors.ErrUnauthorized
	}
	if p.IsSuperAdmin() {
		return nil
	}
	if !p.MemberOf(groupID) {
		return domainerrors.ErrGroupScopeForbidden
	}

	return nil
}
