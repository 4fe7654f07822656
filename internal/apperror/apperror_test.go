package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{NotFound("quiz"), http.StatusNotFound},
		{Validation("bad"), http.StatusUnprocessableEntity},
		{Conflict("dup"), http.StatusConflict},
		{Forbidden("no"), http.StatusForbidden},
		{Unauthenticated("who"), http.StatusUnauthorized},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.StatusCode())
	}
}

func TestFrom(t *testing.T) {
	ae := From(NotFound("quiz"))
	assert.Equal(t, KindNotFound, ae.Kind)

	// Wrapped errors still surface their kind.
	wrapped := fmt.Errorf("outer: %w", Conflict("dup"))
	assert.Equal(t, KindConflict, From(wrapped).Kind)

	// Unknown errors become internal with a generic client message.
	ae = From(errors.New("pq: connection reset"))
	assert.Equal(t, KindInternal, ae.Kind)
	assert.Equal(t, "an unexpected error occurred", ae.Message)
}

func TestInternal_HidesDetailFromMessage(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:5432: timeout")
	ae := Internal(cause)
	assert.Equal(t, "an unexpected error occurred", ae.Message)
	assert.ErrorIs(t, ae, cause)
}
