package service

import (
	"qualifica/internal/domain/entity"

	"github.com/google/uuid"
)

// AccessGuard is the single authorization decision point. Every usecase that
// needs a role or group-scope check goes through it, so enforcement cannot
// drift between endpoints.
type AccessGuard interface {
	// RequirePrincipal fails with Unauthorized when there is no principal.
	RequirePrincipal(p *entity.Principal) error

	// RequireSuperAdmin fails with Unauthorized when there is no principal,
	// or Forbidden when the principal is not a SUPER_ADMIN.
	RequireSuperAdmin(p *entity.Principal) error

	// RequireGroupScope fails with Unauthorized when there is no principal,
	// or Forbidden when the principal is neither SUPER_ADMIN nor a member of
	// the given group.
	RequireGroupScope(p *entity.Principal, groupID uuid.UUID) error
}
