package authz

import (
	"testing"

	"autovitrine-be/internal/entity"
	"autovitrine-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequireRole(t *testing.T) {
	admin := &entity.Caller{Id: uuid.New(), Role: entity.UserRoleAdmin}

	assert.NoError(t, RequireRole(admin, entity.UserRoleAdmin, entity.UserRoleSuperAdmin))

	err := RequireRole(admin, entity.UserRoleSuperAdmin)
	assert.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperror.As(err).Code)

	err = RequireRole(nil, entity.UserRoleAdmin)
	assert.Error(t, err)
	assert.Equal(t, "UNAUTHENTICATED", apperror.As(err).Code)
}

func TestRequireAuthenticated(t *testing.T) {
	user := &entity.Caller{Id: uuid.New(), Role: entity.UserRoleUser}
	assert.NoError(t, RequireAuthenticated(user))
	assert.Error(t, RequireAuthenticated(nil))
}
