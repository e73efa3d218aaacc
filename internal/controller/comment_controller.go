package controller

import (
	"autovitrine-be/internal/dto"
	"autovitrine-be/internal/pkg/apperror"
	"autovitrine-be/internal/pkg/serverutils"
	"autovitrine-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICommentController interface {
	RegisterRoutes(r fiber.Router)
	ListByCar(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	ListReviews(ctx *fiber.Ctx) error
	CreateReview(ctx *fiber.Ctx) error
}

type commentController struct {
	service      service.ICommentService
	authRequired fiber.Handler
}

func NewCommentController(service service.ICommentService, authRequired fiber.Handler) ICommentController {
	return &commentController{
		service:      service,
		authRequired: authRequired,
	}
}

func (c *commentController) RegisterRoutes(r fiber.Router) {
	r.Get("/cars/:id/comments", c.ListByCar)
	r.Post("/cars/:id/comments", c.authRequired, c.Create)

	r.Get("/reviews", c.ListReviews)
	r.Post("/reviews", c.authRequired, c.CreateReview)
}

func (c *commentController) ListByCar(ctx *fiber.Ctx) error {
	carId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid car id", "id")
	}

	res, err := c.service.ListByCar(ctx.Context(), carId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get comments", res))
}

func (c *commentController) Create(ctx *fiber.Ctx) error {
	carId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid car id", "id")
	}

	var req dto.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), serverutils.GetCaller(ctx), carId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create comment", res))
}

func (c *commentController) ListReviews(ctx *fiber.Ctx) error {
	res, err := c.service.ListReviews(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get reviews", res))
}

func (c *commentController) CreateReview(ctx *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateReview(ctx.Context(), serverutils.GetCaller(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create review", res))
}
