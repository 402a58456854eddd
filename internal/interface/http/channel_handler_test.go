package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliphub/cliphub/internal/domain/entity"
	"github.com/cliphub/cliphub/pkg/helpers"
)

func seedChannel(env *testEnv, username string) {
	env.channels.profiles[username] = &entity.ChannelProfile{
		ID:              "channel-id",
		Username:        username,
		Email:           username + "@example.com",
		FullName:        "Demo Channel",
		AvatarURL:       "https://cdn.example.com/media/avatar.png",
		SubscriberCount: 42,
		SubscribedTo:    3,
		CreatedAt:       time.Now(),
	}
}

func TestChannelProfile_UnsubscribedViewer(t *testing.T) {
	env := newTestEnv(t)
	seedChannel(env, "demochannel")

	access, _, err := env.jwt.GenerateAccessToken("some-viewer", "viewer", "viewer@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/c/demochannel", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w, resp := env.do(t, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "channel profile fetched successfully", resp.Message)

	var data entity.ChannelProfile
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "demochannel", data.Username)
	assert.Equal(t, int64(42), data.SubscriberCount)
	assert.Equal(t, int64(3), data.SubscribedTo)
	assert.False(t, data.IsSubscribed)
}

func TestChannelProfile_SubscribedViewer(t *testing.T) {
	env := newTestEnv(t)
	seedChannel(env, "demochannel")

	access, _, err := env.jwt.GenerateAccessToken("subscribed-viewer", "viewer", "viewer@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/c/demochannel", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	_, resp := env.do(t, req)

	var data entity.ChannelProfile
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.True(t, data.IsSubscribed)
}

func TestChannelProfile_UnknownChannelIs404(t *testing.T) {
	env := newTestEnv(t)

	access, _, err := env.jwt.GenerateAccessToken("some-viewer", "viewer", "viewer@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/c/nobody", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w, resp := env.do(t, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "channel does not exist", resp.Message)
}

func TestChannelProfile_InvalidTokenRejected(t *testing.T) {
	env := newTestEnv(t)
	seedChannel(env, "demochannel")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/c/demochannel", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w, resp := env.do(t, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid access token", resp.Message)
}

func TestWatchHistory_ReturnsCallerEntries(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "demouser", "demo@example.com", "password123")
	env.channels.history[u.ID] = []entity.WatchEntry{
		{
			Video: entity.Video{ID: "v1", Title: "First video", Duration: 120.5},
			Owner: entity.VideoOwner{FullName: "Demo Channel", Username: "demochannel"},
		},
	}

	access, _, err := env.jwt.GenerateAccessToken(u.ID, u.Username, u.Email)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/history", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w, resp := env.do(t, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "watch history fetched successfully", resp.Message)

	var entries []entity.WatchEntry
	require.NoError(t, json.Unmarshal(resp.Data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "First video", entries[0].Video.Title)
	assert.Equal(t, "demochannel", entries[0].Owner.Username)
}

func TestWatchHistory_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/history", nil)
	w, resp := env.do(t, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized request", resp.Message)
}

func TestWatchHistory_AccessCookieAlsoAccepted(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "demouser", "demo@example.com", "password123")

	access, _, err := env.jwt.GenerateAccessToken(u.ID, u.Username, u.Email)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/history", nil)
	req.AddCookie(&http.Cookie{Name: helpers.AccessTokenCookie, Value: access})
	w, _ := env.do(t, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
