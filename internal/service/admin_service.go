package service

import (
	"context"
	"time"

	"autovitrine-be/internal/dto"
	"autovitrine-be/internal/entity"
	"autovitrine-be/internal/mapper"
	"autovitrine-be/internal/pkg/apperror"
	"autovitrine-be/internal/pkg/authz"
	"autovitrine-be/internal/pkg/logger"
	"autovitrine-be/internal/repository/specification"
	"autovitrine-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// IAdminService manages back-office admin accounts. Every operation is
// restricted to super admins.
type IAdminService interface {
	ListAdmins(ctx context.Context, caller *entity.Caller) ([]dto.UserResponse, error)
	CreateAdmin(ctx context.Context, caller *entity.Caller, req *dto.CreateAdminRequest) (*dto.UserResponse, error)
	UpdateAdmin(ctx context.Context, caller *entity.Caller, id uuid.UUID, req *dto.UpdateAdminRequest) (*dto.UserResponse, error)
	DeleteAdmin(ctx context.Context, caller *entity.Caller, id uuid.UUID) error
	GetLogs(ctx context.Context, caller *entity.Caller, level string, limit, offset int) ([]logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
	userMapper *mapper.UserMapper
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		log:        log,
		userMapper: mapper.NewUserMapper(),
	}
}

func (s *adminService) ListAdmins(ctx context.Context, caller *entity.Caller) ([]dto.UserResponse, error) {
	if err := authz.RequireRole(caller, entity.UserRoleSuperAdmin); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	admins, err := uow.UserRepository().FindAll(ctx,
		specification.ByRoles{Roles: []string{string(entity.UserRoleAdmin)}},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return s.userMapper.ToResponses(admins), nil
}

func (s *adminService) CreateAdmin(ctx context.Context, caller *entity.Caller, req *dto.CreateAdminRequest) (*dto.UserResponse, error) {
	if err := authz.RequireRole(caller, entity.UserRoleSuperAdmin); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &entity.User{
		Id:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         entity.UserRoleAdmin,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, admin); err != nil {
		return nil, err
	}

	s.log.Info("admin", "admin account created", map[string]interface{}{
		"admin_id":   admin.Id.String(),
		"created_by": caller.Id.String(),
	})
	return s.userMapper.ToResponse(admin), nil
}

func (s *adminService) UpdateAdmin(ctx context.Context, caller *entity.Caller, id uuid.UUID, req *dto.UpdateAdminRequest) (*dto.UserResponse, error) {
	if err := authz.RequireRole(caller, entity.UserRoleSuperAdmin); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	admin, err := uow.UserRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByRoles{Roles: []string{string(entity.UserRoleAdmin)}},
	)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperror.NewNotFound("admin not found")
	}

	if req.Email != admin.Email {
		existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflict("email already registered")
		}
	}

	admin.Name = req.Name
	admin.Email = req.Email
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = string(hash)
	}
	admin.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, admin); err != nil {
		return nil, err
	}
	return s.userMapper.ToResponse(admin), nil
}

func (s *adminService) DeleteAdmin(ctx context.Context, caller *entity.Caller, id uuid.UUID) error {
	if err := authz.RequireRole(caller, entity.UserRoleSuperAdmin); err != nil {
		return err
	}
	if caller.Id == id {
		return apperror.NewForbidden("cannot delete your own account")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	admin, err := uow.UserRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByRoles{Roles: []string{string(entity.UserRoleAdmin)}},
	)
	if err != nil {
		return err
	}
	if admin == nil {
		return apperror.NewNotFound("admin not found")
	}

	if err := uow.UserRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("admin", "admin account deleted", map[string]interface{}{
		"admin_id":   id.String(),
		"deleted_by": caller.Id.String(),
	})
	return nil
}

func (s *adminService) GetLogs(ctx context.Context, caller *entity.Caller, level string, limit, offset int) ([]logger.LogEntry, error) {
	if err := authz.RequireRole(caller, entity.UserRoleSuperAdmin); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.log.GetLogs(level, limit, offset)
}
