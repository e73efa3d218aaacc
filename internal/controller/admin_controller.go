package controller

import (
	"autovitrine-be/internal/dto"
	"autovitrine-be/internal/pkg/apperror"
	"autovitrine-be/internal/pkg/serverutils"
	"autovitrine-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ListAdmins(ctx *fiber.Ctx) error
	CreateAdmin(ctx *fiber.Ctx) error
	UpdateAdmin(ctx *fiber.Ctx) error
	DeleteAdmin(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	service      service.IAdminService
	authRequired fiber.Handler
}

func NewAdminController(service service.IAdminService, authRequired fiber.Handler) IAdminController {
	return &adminController{
		service:      service,
		authRequired: authRequired,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(c.authRequired)
	h.Get("/users", c.ListAdmins)
	h.Post("/users", c.CreateAdmin)
	h.Put("/users/:id", c.UpdateAdmin)
	h.Delete("/users/:id", c.DeleteAdmin)
	h.Get("/logs", c.GetLogs)
}

func (c *adminController) ListAdmins(ctx *fiber.Ctx) error {
	res, err := c.service.ListAdmins(ctx.Context(), serverutils.GetCaller(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get admins", res))
}

func (c *adminController) CreateAdmin(ctx *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateAdmin(ctx.Context(), serverutils.GetCaller(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create admin", res))
}

func (c *adminController) UpdateAdmin(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid admin id", "id")
	}

	var req dto.UpdateAdminRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateAdmin(ctx.Context(), serverutils.GetCaller(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update admin", res))
}

func (c *adminController) DeleteAdmin(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid admin id", "id")
	}

	if err := c.service.DeleteAdmin(ctx.Context(), serverutils.GetCaller(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete admin", nil))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.GetLogs(ctx.Context(), serverutils.GetCaller(ctx), level, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}
