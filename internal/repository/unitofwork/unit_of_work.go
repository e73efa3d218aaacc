package unitofwork

import (
	"context"

	"autovitrine-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CarRepository() contract.CarRepository
	CommentRepository() contract.CommentRepository
	ReviewRepository() contract.ReviewRepository
}
