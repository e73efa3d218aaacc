package contract

import (
	"context"

	"autovitrine-be/internal/entity"
	"autovitrine-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CarRepository interface {
	Create(ctx context.Context, car *entity.Car) error
	Update(ctx context.Context, car *entity.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Car, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Car, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// ReplaceFeatures and ReplaceImages swap out a car's children wholesale.
	// Callers run them inside the same unit of work as the parent update.
	ReplaceFeatures(ctx context.Context, carId uuid.UUID, names []string) error
	ReplaceImages(ctx context.Context, carId uuid.UUID, images []entity.CarImage) error
}
