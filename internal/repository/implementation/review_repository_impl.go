package implementation

import (
	"context"
	"errors"

	"autovitrine-be/internal/entity"
	"autovitrine-be/internal/mapper"
	"autovitrine-be/internal/model"
	"autovitrine-be/internal/repository/contract"
	"autovitrine-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ReviewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReviewMapper
}

func NewReviewRepository(db *gorm.DB) contract.ReviewRepository {
	return &ReviewRepositoryImpl{
		db:     db,
		mapper: mapper.NewReviewMapper(),
	}
}

func (r *ReviewRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *entity.Review) error {
	m := r.mapper.ToModel(review)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	userName := review.UserName
	*review = *r.mapper.ToEntity(m)
	review.UserName = userName
	return nil
}

func (r *ReviewRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Review, error) {
	var m model.Review
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("User"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReviewRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Review, error) {
	var models []*model.Review
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("User"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ReviewRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Review{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
