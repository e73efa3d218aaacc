package mapper

import (
	"autovitrine-be/internal/dto"
	"autovitrine-be/internal/entity"
	"autovitrine-be/internal/model"
)

type CommentMapper struct{}

func NewCommentMapper() *CommentMapper {
	return &CommentMapper{}
}

func (m *CommentMapper) ToEntity(row *model.Comment) *entity.Comment {
	if row == nil {
		return nil
	}
	return &entity.Comment{
		Id:        row.Id,
		CarId:     row.CarId,
		UserId:    row.UserId,
		Content:   row.Content,
		Rating:    row.Rating,
		CreatedAt: row.CreatedAt,
		UserName:  row.User.Name,
	}
}

func (m *CommentMapper) ToModel(comment *entity.Comment) *model.Comment {
	if comment == nil {
		return nil
	}
	return &model.Comment{
		Id:        comment.Id,
		CarId:     comment.CarId,
		UserId:    comment.UserId,
		Content:   comment.Content,
		Rating:    comment.Rating,
		CreatedAt: comment.CreatedAt,
	}
}

func (m *CommentMapper) ToEntities(rows []*model.Comment) []*entity.Comment {
	entities := make([]*entity.Comment, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, m.ToEntity(row))
	}
	return entities
}

func (m *CommentMapper) ToResponse(comment *entity.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		Id:        comment.Id,
		Content:   comment.Content,
		Rating:    comment.Rating,
		CreatedAt: comment.CreatedAt,
		User:      dto.CommentAuthor{Id: comment.UserId, Name: comment.UserName},
	}
}

func (m *CommentMapper) ToResponses(comments []*entity.Comment) []dto.CommentResponse {
	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, *m.ToResponse(comment))
	}
	return responses
}

type ReviewMapper struct{}

func NewReviewMapper() *ReviewMapper {
	return &ReviewMapper{}
}

func (m *ReviewMapper) ToEntity(row *model.Review) *entity.Review {
	if row == nil {
		return nil
	}
	return &entity.Review{
		Id:        row.Id,
		UserId:    row.UserId,
		Rating:    row.Rating,
		Comment:   row.Comment,
		CreatedAt: row.CreatedAt,
		UserName:  row.User.Name,
	}
}

func (m *ReviewMapper) ToModel(review *entity.Review) *model.Review {
	if review == nil {
		return nil
	}
	return &model.Review{
		Id:        review.Id,
		UserId:    review.UserId,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func (m *ReviewMapper) ToEntities(rows []*model.Review) []*entity.Review {
	entities := make([]*entity.Review, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, m.ToEntity(row))
	}
	return entities
}

func (m *ReviewMapper) ToResponse(review *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		Id:        review.Id,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		User:      dto.CommentAuthor{Id: review.UserId, Name: review.UserName},
	}
}

func (m *ReviewMapper) ToResponses(reviews []*entity.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, *m.ToResponse(review))
	}
	return responses
}
