package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser       UserRole = "USER"
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
)

func ParseUserRole(raw string) (UserRole, bool) {
	switch UserRole(raw) {
	case UserRoleUser, UserRoleAdmin, UserRoleSuperAdmin:
		return UserRole(raw), true
	}
	return "", false
}

type User struct {
	Id           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Caller identifies the authenticated principal behind a request. Services
// receive it explicitly; there is no session side channel.
type Caller struct {
	Id   uuid.UUID
	Role UserRole
}
