package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{BadRequest("bad"), 400},
		{Unauthorized("no"), 401},
		{NotFound("missing"), 404},
		{Conflict("dup"), 409},
		{Internal("boom"), 500},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status)
		assert.NotEmpty(t, tc.err.Message)
	}
}

func TestNew_DefaultsMessageToStatusText(t *testing.T) {
	e := New(404, "")
	assert.Equal(t, "Not Found", e.Message)
}

func TestFrom(t *testing.T) {
	assert.Nil(t, From(nil))

	ae := Conflict("exists", "username taken")
	got := From(fmt.Errorf("wrapped: %w", ae))
	assert.Equal(t, 409, got.Status)
	assert.Equal(t, []string{"username taken"}, got.Errs)

	got = From(errors.New("database exploded"))
	assert.Equal(t, 500, got.Status)
	assert.NotContains(t, got.Message, "exploded", "internal details must not leak")
}
