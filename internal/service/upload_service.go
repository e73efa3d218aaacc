package service

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"autovitrine-be/internal/dto"
	"autovitrine-be/internal/entity"
	"autovitrine-be/internal/pkg/apperror"
	"autovitrine-be/internal/pkg/authz"
	"autovitrine-be/pkg/storage"
)

const maxUploadSize = 5 << 20 // 5 MiB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type IUploadService interface {
	UploadImage(ctx context.Context, caller *entity.Caller, file *multipart.FileHeader) (*dto.UploadResponse, error)
}

type uploadService struct {
	storage storage.IObjectStorage
}

func NewUploadService(objectStorage storage.IObjectStorage) IUploadService {
	return &uploadService{
		storage: objectStorage,
	}
}

func (s *uploadService) UploadImage(ctx context.Context, caller *entity.Caller, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if err := authz.RequireRole(caller, entity.UserRoleAdmin, entity.UserRoleSuperAdmin); err != nil {
		return nil, err
	}

	if file.Size > maxUploadSize {
		return nil, apperror.NewValidation("file exceeds 5MB", "file")
	}
	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return nil, apperror.NewValidation("only jpeg, png and webp images are accepted", "file")
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	url, err := s.storage.Upload(ctx, src, file.Size, contentType, strings.ToLower(filepath.Ext(file.Filename)))
	if err != nil {
		return nil, err
	}

	return &dto.UploadResponse{URL: url}, nil
}
