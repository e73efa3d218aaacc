package implementation

import (
	"context"
	"errors"

	"autovitrine-be/internal/entity"
	"autovitrine-be/internal/mapper"
	"autovitrine-be/internal/model"
	"autovitrine-be/internal/repository/contract"
	"autovitrine-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CarRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CarMapper
}

func NewCarRepository(db *gorm.DB) contract.CarRepository {
	return &CarRepositoryImpl{
		db:     db,
		mapper: mapper.NewCarMapper(),
	}
}

func (r *CarRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Create persists only the car row. Children go through ReplaceFeatures and
// ReplaceImages so both paths behave the same on create and update.
func (r *CarRepositoryImpl) Create(ctx context.Context, car *entity.Car) error {
	m := r.mapper.ToModel(car)
	m.Features = nil
	m.Images = nil
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	features := car.Features
	images := car.Images
	*car = *r.mapper.ToEntity(m)
	car.Features = features
	car.Images = images
	return nil
}

func (r *CarRepositoryImpl) Update(ctx context.Context, car *entity.Car) error {
	m := r.mapper.ToModel(car)
	m.Features = nil
	m.Images = nil
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error; err != nil {
		return err
	}
	features := car.Features
	images := car.Images
	*car = *r.mapper.ToEntity(m)
	car.Features = features
	car.Images = images
	return nil
}

// Delete removes the car row; features and images go with it via the
// cascading foreign keys.
func (r *CarRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Car{}, id).Error
}

func (r *CarRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Car, error) {
	var m model.Car
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Features").Preload("Images"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CarRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Car, error) {
	var models []*model.Car
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Features").Preload("Images"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CarRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Car{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CarRepositoryImpl) ReplaceFeatures(ctx context.Context, carId uuid.UUID, names []string) error {
	if err := r.db.WithContext(ctx).Where("car_id = ?", carId).Delete(&model.CarFeature{}).Error; err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}
	rows := make([]model.CarFeature, 0, len(names))
	for _, name := range names {
		rows = append(rows, model.CarFeature{CarId: carId, Name: name})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *CarRepositoryImpl) ReplaceImages(ctx context.Context, carId uuid.UUID, images []entity.CarImage) error {
	if err := r.db.WithContext(ctx).Where("car_id = ?", carId).Delete(&model.CarImage{}).Error; err != nil {
		return err
	}
	if len(images) == 0 {
		return nil
	}
	rows := make([]model.CarImage, 0, len(images))
	for _, img := range images {
		rows = append(rows, model.CarImage{CarId: carId, URL: img.URL, IsMain: img.IsMain})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
