package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NotFound("missing"), KindNotFound},
		{"conflict", Conflict("duplicate"), KindConflict},
		{"forbidden", Forbidden("nope"), KindForbidden},
		{"unauthorized", Unauthorized("who"), KindUnauthorized},
		{"validation", Validation("bad"), KindValidation},
		{"plain error defaults to internal", errors.New("boom"), KindInternal},
		{"wrapped app error keeps its kind", fmt.Errorf("outer: %w", NotFound("inner")), KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal("write failed", cause)

	assert.Equal(t, "write failed", err.Error())
	assert.ErrorIs(t, err, cause)
}
