package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"estateflow-be/internal/pkg/apperr"
)

func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return fiber.StatusBadRequest
	case apperr.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperr.KindForbidden:
		return fiber.StatusForbidden
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandlerMiddleware converts errors bubbling out of handlers into the
// standard response envelope. Internal errors are masked with a generic
// message so database details never reach the client.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		kind := apperr.KindOf(err)
		status := statusForKind(kind)
		message := err.Error()
		if kind == apperr.KindInternal {
			message = "Internal server error"
		}
		return ctx.Status(status).JSON(ErrorResponse(status, message))
	}
}
