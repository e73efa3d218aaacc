package service

import (
	"context"
	"math"
	"time"

	"autovitrine-be/internal/dto"
	"autovitrine-be/internal/entity"
	"autovitrine-be/internal/mapper"
	"autovitrine-be/internal/pkg/apperror"
	"autovitrine-be/internal/pkg/authz"
	"autovitrine-be/internal/repository/specification"
	"autovitrine-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICommentService interface {
	ListByCar(ctx context.Context, carId uuid.UUID) ([]dto.CommentResponse, error)
	Create(ctx context.Context, caller *entity.Caller, carId uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)

	ListReviews(ctx context.Context) (*dto.ReviewListResponse, error)
	CreateReview(ctx context.Context, caller *entity.Caller, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
}

type commentService struct {
	uowFactory    unitofwork.RepositoryFactory
	commentMapper *mapper.CommentMapper
	reviewMapper  *mapper.ReviewMapper
}

func NewCommentService(uowFactory unitofwork.RepositoryFactory) ICommentService {
	return &commentService{
		uowFactory:    uowFactory,
		commentMapper: mapper.NewCommentMapper(),
		reviewMapper:  mapper.NewReviewMapper(),
	}
}

func (s *commentService) ListByCar(ctx context.Context, carId uuid.UUID) ([]dto.CommentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: carId})
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, apperror.NewNotFound("car not found")
	}

	comments, err := uow.CommentRepository().FindAll(ctx,
		specification.ByCarID{CarID: carId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return s.commentMapper.ToResponses(comments), nil
}

func (s *commentService) Create(ctx context.Context, caller *entity.Caller, carId uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if err := authz.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: carId})
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, apperror.NewNotFound("car not found")
	}

	author, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: caller.Id})
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, apperror.NewUnauthenticated("unknown user")
	}

	comment := &entity.Comment{
		Id:        uuid.New(),
		CarId:     carId,
		UserId:    caller.Id,
		Content:   req.Content,
		Rating:    *req.Rating,
		CreatedAt: time.Now(),
		UserName:  author.Name,
	}

	if err := uow.CommentRepository().Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentMapper.ToResponse(comment), nil
}

// ListReviews returns all site reviews newest first, with the average rating
// rounded to one decimal.
func (s *commentService) ListReviews(ctx context.Context) (*dto.ReviewListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reviews, err := uow.ReviewRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	result := &dto.ReviewListResponse{
		Reviews:      s.reviewMapper.ToResponses(reviews),
		TotalReviews: len(reviews),
	}
	if len(reviews) > 0 {
		var sum int
		for _, review := range reviews {
			sum += review.Rating
		}
		result.AverageRating = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}
	return result, nil
}

// CreateReview accepts one review per user.
func (s *commentService) CreateReview(ctx context.Context, caller *entity.Caller, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if err := authz.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.ReviewRepository().FindOne(ctx, specification.ByUserID{UserID: caller.Id})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflict("review already submitted")
	}

	author, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: caller.Id})
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, apperror.NewUnauthenticated("unknown user")
	}

	review := &entity.Review{
		Id:        uuid.New(),
		UserId:    caller.Id,
		Rating:    *req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
		UserName:  author.Name,
	}

	if err := uow.ReviewRepository().Create(ctx, review); err != nil {
		return nil, err
	}
	return s.reviewMapper.ToResponse(review), nil
}
