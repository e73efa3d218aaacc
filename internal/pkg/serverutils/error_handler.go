package serverutils

import (
	"errors"

	"autovitrine-be/internal/pkg/apperror"
	"autovitrine-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// NewErrorHandler maps errors escaping handlers to the response envelope.
// Classified application errors keep their message; anything else becomes a
// generic 500 so internals never leak to clients.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		if appErr := apperror.As(err); appErr != nil {
			return ctx.Status(apperror.HTTPStatus(err)).JSON(ErrorResponse(appErr.Code, appErr.Message, appErr.Fields...))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse("HTTP_ERROR", fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"error":  err.Error(),
			"path":   ctx.Path(),
			"method": ctx.Method(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("INTERNAL_ERROR", "internal server error"))
	}
}
