package controller

import (
	"autovitrine-be/internal/dto"
	"autovitrine-be/internal/pkg/apperror"
	"autovitrine-be/internal/pkg/serverutils"
	"autovitrine-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContactController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
}

type contactController struct {
	service service.IContactService
}

func NewContactController(service service.IContactService) IContactController {
	return &contactController{service: service}
}

func (c *contactController) RegisterRoutes(r fiber.Router) {
	r.Post("/contact", c.Submit)
}

func (c *contactController) Submit(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.Submit(ctx.Context(), &req, ctx.IP()); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse[any]("Message received", nil))
}
