package controller

import (
	"autovitrine-be/internal/pkg/apperror"
	"autovitrine-be/internal/pkg/serverutils"
	"autovitrine-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type uploadController struct {
	service      service.IUploadService
	authRequired fiber.Handler
}

func NewUploadController(service service.IUploadService, authRequired fiber.Handler) IUploadController {
	return &uploadController{
		service:      service,
		authRequired: authRequired,
	}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	r.Post("/admin/uploads", c.authRequired, c.Upload)
}

func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return apperror.NewValidation("missing file", "file")
	}

	res, err := c.service.UploadImage(ctx.Context(), serverutils.GetCaller(ctx), file)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upload image", res))
}
