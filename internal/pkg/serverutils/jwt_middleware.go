package serverutils

import (
	"strings"

	"autovitrine-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const callerKey = "caller"

// NewJwtMiddleware returns a middleware that authenticates the request and
// stores the caller in locals. Requests without a valid token get 401.
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		caller, err := parseCaller(ctx, secret)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("UNAUTHENTICATED", err.Error()))
		}
		ctx.Locals(callerKey, caller)
		return ctx.Next()
	}
}

func parseCaller(ctx *fiber.Ctx, secret string) (*entity.Caller, error) {
	authHeader := ctx.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "missing token")
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid claims")
	}

	rawId, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(rawId)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid claims")
	}
	rawRole, _ := claims["role"].(string)
	role, ok := entity.ParseUserRole(rawRole)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid claims")
	}

	return &entity.Caller{Id: userId, Role: role}, nil
}

// GetCaller returns the authenticated caller, or nil on anonymous requests.
func GetCaller(ctx *fiber.Ctx) *entity.Caller {
	caller, _ := ctx.Locals(callerKey).(*entity.Caller)
	return caller
}
