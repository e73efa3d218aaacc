package controller

import (
	"autovitrine-be/internal/dto"
	"autovitrine-be/internal/pkg/apperror"
	"autovitrine-be/internal/pkg/serverutils"
	"autovitrine-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICarController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	ListSold(ctx *fiber.Ctx) error
	ListAdmin(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type carController struct {
	service      service.ICarService
	authRequired fiber.Handler
}

func NewCarController(service service.ICarService, authRequired fiber.Handler) ICarController {
	return &carController{
		service:      service,
		authRequired: authRequired,
	}
}

func (c *carController) RegisterRoutes(r fiber.Router) {
	pub := r.Group("/cars")
	pub.Get("", c.List)
	pub.Get("/sold", c.ListSold)
	pub.Get("/:id", c.Show)

	adm := r.Group("/admin/cars")
	adm.Use(c.authRequired)
	adm.Get("", c.ListAdmin)
	adm.Post("", c.Create)
	adm.Put("/:id", c.Update)
	adm.Patch("/:id/status", c.UpdateStatus)
	adm.Delete("/:id", c.Delete)
}

func (c *carController) List(ctx *fiber.Ctx) error {
	var filter dto.CarFilterRequest
	if err := ctx.QueryParser(&filter); err != nil {
		return apperror.NewValidation("invalid query parameters")
	}

	res, err := c.service.List(ctx.Context(), &filter)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get cars", res))
}

func (c *carController) ListSold(ctx *fiber.Ctx) error {
	res, err := c.service.ListSold(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get sold cars", res))
}

func (c *carController) ListAdmin(ctx *fiber.Ctx) error {
	res, err := c.service.ListAdmin(ctx.Context(), serverutils.GetCaller(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get cars", res))
}

func (c *carController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid car id", "id")
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get car", res))
}

func (c *carController) Create(ctx *fiber.Ctx) error {
	var req dto.SaveCarRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), serverutils.GetCaller(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create car", res))
}

func (c *carController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid car id", "id")
	}

	var req dto.SaveCarRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), serverutils.GetCaller(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update car", res))
}

func (c *carController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid car id", "id")
	}

	var req dto.UpdateCarStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateStatus(ctx.Context(), serverutils.GetCaller(ctx), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update car status", res))
}

func (c *carController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid car id", "id")
	}

	if err := c.service.Delete(ctx.Context(), serverutils.GetCaller(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete car", nil))
}
