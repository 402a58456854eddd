package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() *JWTManager {
	return NewJWTManager("access-secret", "refresh-secret", time.Minute, time.Hour)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	m := testManager()
	token, exp, err := m.GenerateAccessToken("user-1", "demouser", "demo@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Minute), exp, 5*time.Second)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "demouser", claims.Username)
	assert.Equal(t, "demo@example.com", claims.Email)
}

func TestRefreshToken_CarriesOnlyUserID(t *testing.T) {
	m := testManager()
	token, _, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := m.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestParse_WrongSecretRejected(t *testing.T) {
	m := testManager()
	other := NewJWTManager("other-access", "other-refresh", time.Minute, time.Hour)

	access, _, err := m.GenerateAccessToken("user-1", "demouser", "demo@example.com")
	require.NoError(t, err)
	_, err = other.ParseAccessToken(access)
	assert.Error(t, err)

	refresh, _, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	_, err = other.ParseRefreshToken(refresh)
	assert.Error(t, err)
}

func TestParse_SecretsAreNotInterchangeable(t *testing.T) {
	m := testManager()
	refresh, _, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	_, err = m.ParseAccessToken(refresh)
	assert.Error(t, err, "a refresh token must not validate as an access token")
}

func TestParse_ExpiredRejected(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)
	token, _, err := m.GenerateAccessToken("user-1", "demouser", "demo@example.com")
	require.NoError(t, err)
	_, err = m.ParseAccessToken(token)
	assert.Error(t, err)
}
