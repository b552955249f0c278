package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateflow-be/internal/pkg/apperr"
)

func TestErrorHandlerMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "not found",
			err:         apperr.NotFound("property not found"),
			wantStatus:  404,
			wantMessage: "property not found",
		},
		{
			name:        "validation",
			err:         apperr.Validation("field 'email' failed on 'required'"),
			wantStatus:  400,
			wantMessage: "field 'email' failed on 'required'",
		},
		{
			name:        "conflict",
			err:         apperr.Conflict("email already registered"),
			wantStatus:  409,
			wantMessage: "email already registered",
		},
		{
			name:        "forbidden",
			err:         apperr.Forbidden("listing limit reached"),
			wantStatus:  403,
			wantMessage: "listing limit reached",
		},
		{
			name:        "unauthorized",
			err:         apperr.Unauthorized("Missing token"),
			wantStatus:  401,
			wantMessage: "Missing token",
		},
		{
			name:        "internal errors are masked",
			err:         errors.New("pq: connection refused"),
			wantStatus:  500,
			wantMessage: "Internal server error",
		},
		{
			name:        "fiber errors pass through",
			err:         fiber.ErrMethodNotAllowed,
			wantStatus:  405,
			wantMessage: "Method Not Allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware())
			app.Get("/boom", func(ctx *fiber.Ctx) error {
				return tt.err
			})

			res, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			defer res.Body.Close()

			assert.Equal(t, tt.wantStatus, res.StatusCode)

			var body Response[any]
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestSuccessResponseEnvelope(t *testing.T) {
	res := SuccessResponse("done", map[string]string{"id": "1"})
	assert.True(t, res.Success)
	assert.Equal(t, 200, res.Code)
	assert.Equal(t, "done", res.Message)
	assert.Equal(t, "1", res.Data["id"])
}
