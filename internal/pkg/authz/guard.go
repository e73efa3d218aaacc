package authz

import (
	"autovitrine-be/internal/entity"
	"autovitrine-be/internal/pkg/apperror"
)

// RequireRole checks that the caller is authenticated and holds one of the
// allowed roles.
func RequireRole(caller *entity.Caller, roles ...entity.UserRole) error {
	if caller == nil {
		return apperror.NewUnauthenticated("authentication required")
	}
	for _, role := range roles {
		if caller.Role == role {
			return nil
		}
	}
	return apperror.NewForbidden("insufficient role")
}

// RequireAuthenticated checks only that a caller is present, regardless of role.
func RequireAuthenticated(caller *entity.Caller) error {
	if caller == nil {
		return apperror.NewUnauthenticated("authentication required")
	}
	return nil
}
