package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
	Rating  *int   `json:"rating" validate:"required,min=1,max=5"`
}

type CommentAuthor struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CommentResponse struct {
	Id        uuid.UUID     `json:"id"`
	Content   string        `json:"content"`
	Rating    int           `json:"rating"`
	CreatedAt time.Time     `json:"createdAt"`
	User      CommentAuthor `json:"user"`
}

type CreateReviewRequest struct {
	Rating  *int   `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,min=10"`
}

type ReviewResponse struct {
	Id        uuid.UUID     `json:"id"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment"`
	CreatedAt time.Time     `json:"createdAt"`
	User      CommentAuthor `json:"user"`
}

type ReviewListResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"averageRating"`
	TotalReviews  int              `json:"totalReviews"`
}
