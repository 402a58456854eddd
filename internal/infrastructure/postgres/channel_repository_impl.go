package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/cliphub/cliphub/internal/domain/entity"
	"github.com/cliphub/cliphub/internal/domain/repository"
)

// ChannelRepository runs the read-only aggregation queries. The viewer id is
// compared as text so an empty viewer id simply never matches instead of
// failing the uuid cast.
type ChannelRepository struct {
	db DB
}

func NewChannelRepository(db DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

func (r *ChannelRepository) GetProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT u.id, u.username, u.email, u.full_name, u.avatar_url, u.cover_image_url, u.created_at,
		       (SELECT count(*) FROM subscriptions s WHERE s.channel_id = u.id)    AS subscribers,
		       (SELECT count(*) FROM subscriptions s WHERE s.subscriber_id = u.id) AS subscribed_to,
		       EXISTS (
		           SELECT 1 FROM subscriptions s
		           WHERE s.channel_id = u.id AND s.subscriber_id::text = $2
		       ) AS is_subscribed
		FROM users u
		WHERE u.username = lower($1)
	`, username, viewerID)

	p := &entity.ChannelProfile{}
	if err := row.Scan(&p.ID, &p.Username, &p.Email, &p.FullName, &p.AvatarURL, &p.CoverImageURL,
		&p.CreatedAt, &p.SubscriberCount, &p.SubscribedTo, &p.IsSubscribed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ChannelRepository) WatchHistory(ctx context.Context, userID string) ([]entity.WatchEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT v.id, v.owner_id, v.video_url, v.thumbnail_url, v.title, v.description,
		       v.duration, v.views, v.is_published, v.created_at,
		       o.full_name, o.username, o.avatar_url,
		       h.watched_at
		FROM watch_history h
		JOIN videos v ON v.id = h.video_id
		JOIN users o  ON o.id = v.owner_id
		WHERE h.user_id = $1
		ORDER BY h.position
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]entity.WatchEntry, 0)
	for rows.Next() {
		var e entity.WatchEntry
		if err := rows.Scan(&e.Video.ID, &e.Video.OwnerID, &e.Video.VideoURL, &e.Video.ThumbnailURL,
			&e.Video.Title, &e.Video.Description, &e.Video.Duration, &e.Video.Views,
			&e.Video.IsPublished, &e.Video.CreatedAt,
			&e.Owner.FullName, &e.Owner.Username, &e.Owner.AvatarURL,
			&e.WatchedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

var _ repository.ChannelRepository = (*ChannelRepository)(nil)
