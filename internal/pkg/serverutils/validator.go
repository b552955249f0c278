package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"estateflow-be/internal/pkg/apperr"
)

var validate = validator.New()

// ValidateRequest parses the JSON body into req and runs struct validation.
// Both failure modes surface as validation errors for the error handler.
func ValidateRequest(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
			}
			return apperr.Validation(strings.Join(msgs, "; "))
		}
		return apperr.Validation(err.Error())
	}
	return nil
}
