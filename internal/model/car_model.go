package model

import (
	"time"

	"github.com/google/uuid"
)

type Car struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Brand        string    `gorm:"type:varchar(50);not null;index"`
	Model        string    `gorm:"type:varchar(100);not null"`
	Year         int       `gorm:"not null"`
	Price        float64   `gorm:"type:numeric(12,2);not null"`
	Mileage      int       `gorm:"not null"`
	FuelType     string    `gorm:"type:varchar(50);not null"`
	Transmission string    `gorm:"type:varchar(50);not null"`
	BodyType     string    `gorm:"type:varchar(50);not null"`
	Power        int       `gorm:"not null"`
	Color        string    `gorm:"type:varchar(50);not null"`
	Doors        int       `gorm:"not null"`
	Description  string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'AVAILABLE';index"`
	SoldDate     *time.Time
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	Features []CarFeature `gorm:"foreignKey:CarId;constraint:OnDelete:CASCADE"`
	Images   []CarImage   `gorm:"foreignKey:CarId;constraint:OnDelete:CASCADE"`
}

func (Car) TableName() string {
	return "cars"
}

type CarFeature struct {
	Id    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CarId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name  string    `gorm:"type:varchar(255);not null"`
}

func (CarFeature) TableName() string {
	return "car_features"
}

type CarImage struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CarId  uuid.UUID `gorm:"type:uuid;not null;index"`
	URL    string    `gorm:"type:text;not null"`
	IsMain bool      `gorm:"not null;default:false"`
}

func (CarImage) TableName() string {
	return "car_images"
}
