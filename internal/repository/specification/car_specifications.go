package specification

import (
	"gorm.io/gorm"
)

// ByStatus filters cars on their lifecycle status.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByBrand filters cars on their brand.
type ByBrand struct {
	Brand string
}

func (s ByBrand) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("brand = ?", s.Brand)
}

// PriceBetween bounds the price range. Either side may be nil for open-ended.
type PriceBetween struct {
	Min *float64
	Max *float64
}

func (s PriceBetween) Apply(db *gorm.DB) *gorm.DB {
	if s.Min != nil {
		db = db.Where("price >= ?", *s.Min)
	}
	if s.Max != nil {
		db = db.Where("price <= ?", *s.Max)
	}
	return db
}

// YearBetween bounds the model year. Either side may be nil for open-ended.
type YearBetween struct {
	Min *int
	Max *int
}

func (s YearBetween) Apply(db *gorm.DB) *gorm.DB {
	if s.Min != nil {
		db = db.Where("year >= ?", *s.Min)
	}
	if s.Max != nil {
		db = db.Where("year <= ?", *s.Max)
	}
	return db
}

// ByFuelType filters cars on their fuel type.
type ByFuelType struct {
	FuelType string
}

func (s ByFuelType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("fuel_type = ?", s.FuelType)
}

// ByTransmission filters cars on their transmission.
type ByTransmission struct {
	Transmission string
}

func (s ByTransmission) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("transmission = ?", s.Transmission)
}

// ByBodyType filters cars on their body type.
type ByBodyType struct {
	BodyType string
}

func (s ByBodyType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("body_type = ?", s.BodyType)
}

// ByCarID filters child rows (comments, features, images) on their car.
type ByCarID struct {
	CarID interface{}
}

func (s ByCarID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("car_id = ?", s.CarID)
}

// OrderBySoldDateDesc orders sold listings newest sale first.
type OrderBySoldDateDesc struct{}

func (s OrderBySoldDateDesc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("sold_date DESC")
}
