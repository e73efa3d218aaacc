package dto

import (
	"time"

	"github.com/google/uuid"
)

// SaveCarRequest is shared by create and update. Numeric fields are pointers
// so a legitimate zero (e.g. mileage 0) is distinguishable from a missing one.
type SaveCarRequest struct {
	Brand        string   `json:"brand" validate:"required"`
	Model        string   `json:"model" validate:"required"`
	Year         *int     `json:"year" validate:"required,min=1900"`
	Price        *float64 `json:"price" validate:"required,gt=0"`
	Mileage      *int     `json:"mileage" validate:"required,min=0"`
	FuelType     string   `json:"fuelType" validate:"required"`
	Transmission string   `json:"transmission" validate:"required"`
	BodyType     string   `json:"bodyType" validate:"required"`
	Power        *int     `json:"power" validate:"required,gt=0"`
	Color        string   `json:"color" validate:"required"`
	Doors        *int     `json:"doors" validate:"required,min=2,max=7"`
	Description  string   `json:"description" validate:"required"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
	MainImage    string   `json:"mainImage"`
}

type UpdateCarStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CarFilterRequest carries the public listing filters, all optional.
type CarFilterRequest struct {
	Brand        string   `query:"brand"`
	MinPrice     *float64 `query:"minPrice"`
	MaxPrice     *float64 `query:"maxPrice"`
	MinYear      *int     `query:"minYear"`
	MaxYear      *int     `query:"maxYear"`
	FuelType     string   `query:"fuelType"`
	Transmission string   `query:"transmission"`
	BodyType     string   `query:"bodyType"`
}

type CarResponse struct {
	Id           uuid.UUID  `json:"id"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	Year         int        `json:"year"`
	Price        float64    `json:"price"`
	Mileage      int        `json:"mileage"`
	FuelType     string     `json:"fuelType"`
	Transmission string     `json:"transmission"`
	BodyType     string     `json:"bodyType"`
	Power        int        `json:"power"`
	Color        string     `json:"color"`
	Doors        int        `json:"doors"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	SoldDate     *time.Time `json:"soldDate"`
	MainImage    string     `json:"mainImage"`
	Images       []string   `json:"images"`
	Features     []string   `json:"features"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type CarDetailResponse struct {
	CarResponse
	Comments []CommentResponse `json:"comments"`
}
