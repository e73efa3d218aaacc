package entity

import (
	"time"

	"github.com/google/uuid"
)

type CarStatus string

const (
	CarStatusAvailable CarStatus = "AVAILABLE"
	CarStatusReserved  CarStatus = "RESERVED"
	CarStatusSold      CarStatus = "SOLD"
)

// ParseCarStatus validates a raw status value against the closed set.
func ParseCarStatus(raw string) (CarStatus, bool) {
	switch CarStatus(raw) {
	case CarStatusAvailable, CarStatusReserved, CarStatusSold:
		return CarStatus(raw), true
	}
	return "", false
}

// Closed value sets for the car attributes. The original site only enforced
// these in the admin form; here they are checked on every write path so no
// invalid value can enter storage through a non-UI caller.
var (
	CarBrands = []string{
		"Audi", "BMW", "Citroën", "Dacia", "Fiat", "Ford", "Honda",
		"Hyundai", "Kia", "Mercedes", "Nissan", "Opel", "Peugeot",
		"Renault", "Seat", "Skoda", "Toyota", "Volkswagen", "Volvo",
	}

	FuelTypes = []string{
		"Essence", "Diesel", "Électrique", "Hybride", "GPL", "Hydrogène",
	}

	Transmissions = []string{
		"Manuelle", "Automatique", "Semi-automatique",
	}

	BodyTypes = []string{
		"Berline", "Break", "SUV", "Coupé", "Cabriolet",
		"Monospace", "Citadine", "Utilitaire",
	}
)

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func IsValidBrand(v string) bool        { return contains(CarBrands, v) }
func IsValidFuelType(v string) bool     { return contains(FuelTypes, v) }
func IsValidTransmission(v string) bool { return contains(Transmissions, v) }
func IsValidBodyType(v string) bool     { return contains(BodyTypes, v) }

type Car struct {
	Id           uuid.UUID
	Brand        string
	Model        string
	Year         int
	Price        float64
	Mileage      int
	FuelType     string
	Transmission string
	BodyType     string
	Power        int
	Color        string
	Doors        int
	Description  string
	Status       CarStatus
	SoldDate     *time.Time
	UserId       uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Features []CarFeature
	Images   []CarImage
}

// ApplyStatus moves the car to the given status and keeps SoldDate
// consistent: set when the car is sold, cleared otherwise.
func (c *Car) ApplyStatus(status CarStatus, now time.Time) {
	c.Status = status
	if status == CarStatusSold {
		t := now
		c.SoldDate = &t
	} else {
		c.SoldDate = nil
	}
}

type CarFeature struct {
	Id    uuid.UUID
	CarId uuid.UUID
	Name  string
}

type CarImage struct {
	Id     uuid.UUID
	CarId  uuid.UUID
	URL    string
	IsMain bool
}
