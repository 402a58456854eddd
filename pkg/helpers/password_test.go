package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_CompareRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CompareHashAndPassword(hash, "correct horse battery staple"))
	assert.False(t, CompareHashAndPassword(hash, "wrong password"))
	assert.False(t, CompareHashAndPassword("not-a-bcrypt-hash", "anything"))
}
