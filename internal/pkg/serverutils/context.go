package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"estateflow-be/internal/pkg/apperr"
)

// UserIdFromCtx reads the user id set by JwtMiddleware.
func UserIdFromCtx(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals("user_id").(string)
	if raw == "" {
		return uuid.Nil, apperr.Unauthorized("Missing user identity")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Unauthorized("Invalid user identity")
	}
	return id, nil
}

func RoleFromCtx(ctx *fiber.Ctx) string {
	role, _ := ctx.Locals("role").(string)
	return role
}
