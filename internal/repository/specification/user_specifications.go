package specification

import "gorm.io/gorm"

// ByEmail filters users on their email address.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByRoles filters users on a set of roles.
type ByRoles struct {
	Roles []string
}

func (s ByRoles) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role IN ?", s.Roles)
}

// ByUserID filters rows owned by a user.
type ByUserID struct {
	UserID interface{}
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
