package repository

import (
	"context"

	"github.com/cliphub/cliphub/internal/domain/entity"
)

// ChannelRepository is the read-only aggregation surface: channel profile
// and watch history. It never mutates subscriptions or videos.
type ChannelRepository interface {
	// GetProfile aggregates subscriber counts for the channel with the given
	// username and whether viewerID is among its subscribers.
	GetProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error)
	// WatchHistory resolves the user's watched videos in watch order, each
	// with its owner collapsed to a single sanitized record.
	WatchHistory(ctx context.Context, userID string) ([]entity.WatchEntry, error)
}
