package model

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CarId     uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Car  Car  `gorm:"foreignKey:CarId;constraint:OnDelete:CASCADE"`
	User User `gorm:"foreignKey:UserId"`
}

func (Comment) TableName() string {
	return "comments"
}

type Review struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserId"`
}

func (Review) TableName() string {
	return "reviews"
}
