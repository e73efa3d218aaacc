package controller

import (
	"autovitrine-be/internal/dto"
	"autovitrine-be/internal/pkg/apperror"
	"autovitrine-be/internal/pkg/serverutils"
	"autovitrine-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Profile(ctx *fiber.Ctx) error
	ChangePassword(ctx *fiber.Ctx) error
}

type authController struct {
	service      service.IAuthService
	authRequired fiber.Handler
}

func NewAuthController(service service.IAuthService, authRequired fiber.Handler) IAuthController {
	return &authController{
		service:      service,
		authRequired: authRequired,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Get("/profile", c.authRequired, c.Profile)
	h.Put("/change-password", c.authRequired, c.ChangePassword)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success register", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}

func (c *authController) Profile(ctx *fiber.Ctx) error {
	res, err := c.service.Profile(ctx.Context(), serverutils.GetCaller(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

func (c *authController) ChangePassword(ctx *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.ChangePassword(ctx.Context(), serverutils.GetCaller(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success change password", nil))
}
