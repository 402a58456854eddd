package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackc/pgx/v5"

	"github.com/cliphub/cliphub/internal/domain/repository"
)

func TestGetProfile_ScansAggregates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)SELECT .+ FROM users u`).
		WithArgs("demochannel", "22222222-2222-2222-2222-222222222222").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "username", "email", "full_name", "avatar_url", "cover_image_url",
			"created_at", "subscribers", "subscribed_to", "is_subscribed",
		}).AddRow(
			"11111111-1111-1111-1111-111111111111", "demochannel", "channel@example.com",
			"Demo Channel", "https://cdn/avatar.png", "https://cdn/cover.png",
			now, int64(42), int64(3), true,
		))

	repo := NewChannelRepository(mock)
	p, err := repo.GetProfile(context.Background(), "demochannel", "22222222-2222-2222-2222-222222222222")
	require.NoError(t, err)
	assert.Equal(t, "demochannel", p.Username)
	assert.Equal(t, int64(42), p.SubscriberCount)
	assert.Equal(t, int64(3), p.SubscribedTo)
	assert.True(t, p.IsSubscribed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfile_UnknownUsernameIsNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`(?s)SELECT .+ FROM users u`).
		WithArgs("nobody", "").
		WillReturnError(pgx.ErrNoRows)

	repo := NewChannelRepository(mock)
	p, err := repo.GetProfile(context.Background(), "nobody", "")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWatchHistory_ReturnsEntriesInOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	cols := []string{
		"id", "owner_id", "video_url", "thumbnail_url", "title", "description",
		"duration", "views", "is_published", "created_at",
		"full_name", "username", "avatar_url", "watched_at",
	}
	mock.ExpectQuery(`(?s)SELECT .+ FROM watch_history h`).
		WithArgs("33333333-3333-3333-3333-333333333333").
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(
				"v1", "o1", "https://cdn/v1.mp4", "https://cdn/t1.png", "First video", "first",
				120.5, int64(10), true, now,
				"Demo Channel", "demochannel", "https://cdn/avatar.png", now,
			).
			AddRow(
				"v2", "o1", "https://cdn/v2.mp4", "https://cdn/t2.png", "Second video", "second",
				30.0, int64(0), true, now,
				"Demo Channel", "demochannel", "https://cdn/avatar.png", now,
			))

	repo := NewChannelRepository(mock)
	entries, err := repo.WatchHistory(context.Background(), "33333333-3333-3333-3333-333333333333")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "First video", entries[0].Video.Title)
	assert.Equal(t, "v2", entries[1].Video.ID)
	assert.Equal(t, "demochannel", entries[0].Owner.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWatchHistory_EmptyIsNotAnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`(?s)SELECT .+ FROM watch_history h`).
		WithArgs("33333333-3333-3333-3333-333333333333").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	repo := NewChannelRepository(mock)
	entries, err := repo.WatchHistory(context.Background(), "33333333-3333-3333-3333-333333333333")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}
