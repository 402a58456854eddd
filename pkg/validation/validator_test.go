package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

func validate(t *testing.T, payload samplePayload) error {
	t.Helper()
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v.Struct(payload)
}

func TestToDetails_UsesJSONFieldNames(t *testing.T) {
	err := validate(t, samplePayload{Email: "not-an-email", Password: "password123"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be a valid email", details["email"])
	assert.NotContains(t, details, "Email", "struct field names never leak")
}

func TestToDetails_PasswordAlias(t *testing.T) {
	err := validate(t, samplePayload{Email: "a@b.c", Password: "short"})
	require.Error(t, err)

	details := ToDetails(err)
	require.Contains(t, details, "password")
}

func TestToList_IsSortedAndFlattened(t *testing.T) {
	err := validate(t, samplePayload{})
	require.Error(t, err)

	list := ToList(err)
	require.Len(t, list, 2)
	assert.Equal(t, "email: is required", list[0])
	assert.Equal(t, "password: is required", list[1])
}

func TestToDetails_NilError(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	assert.Nil(t, ToList(nil))
}

func TestToDetails_NonValidationError(t *testing.T) {
	details := ToDetails(assert.AnError)
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, details)
}
