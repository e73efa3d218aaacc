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
)

type CommentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommentMapper
}

func NewCommentRepository(db *gorm.DB) contract.CommentRepository {
	return &CommentRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommentMapper(),
	}
}

func (r *CommentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *entity.Comment) error {
	m := r.mapper.ToModel(comment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	userName := comment.UserName
	*comment = *r.mapper.ToEntity(m)
	comment.UserName = userName
	return nil
}

func (r *CommentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Comment{}, id).Error
}

func (r *CommentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Comment, error) {
	var m model.Comment
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("User"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CommentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Comment, error) {
	var models []*model.Comment
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("User"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CommentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Comment{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
