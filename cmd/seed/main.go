package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/cliphub/cliphub/config"
	"github.com/cliphub/cliphub/pkg/helpers"
)

// Seeds a demo channel with a viewer account, a couple of videos, a
// subscription edge, and some watch history.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword("password123")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	channelID := upsertUser(db, "demochannel", "channel@cliphub.dev", "Demo Channel", hash)
	viewerID := upsertUser(db, "demoviewer", "viewer@cliphub.dev", "Demo Viewer", hash)
	fmt.Printf("seeded users: channel=%s viewer=%s password=password123\n", channelID, viewerID)

	if _, err := db.Exec(`
		INSERT INTO subscriptions (subscriber_id, channel_id)
		VALUES ($1, $2)
		ON CONFLICT (subscriber_id, channel_id) DO NOTHING
	`, viewerID, channelID); err != nil {
		log.Fatalf("failed to seed subscription: %v", err)
	}

	titles := []string{"First upload", "Second upload"}
	for i, title := range titles {
		var videoID string
		if err := db.QueryRow(`
			INSERT INTO videos (owner_id, video_url, thumbnail_url, title, description, duration)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, channelID,
			fmt.Sprintf("https://storage.googleapis.com/%s/media/demo-%d.mp4", cfg.GCSBucket, i),
			fmt.Sprintf("https://storage.googleapis.com/%s/media/demo-%d.jpg", cfg.GCSBucket, i),
			title, "seeded demo video", 42.0).Scan(&videoID); err != nil {
			log.Fatalf("failed to seed video: %v", err)
		}
		if _, err := db.Exec(`
			INSERT INTO watch_history (user_id, video_id, position)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, video_id) DO NOTHING
		`, viewerID, videoID, i); err != nil {
			log.Fatalf("failed to seed watch history: %v", err)
		}
	}
	fmt.Println("seeded videos, subscription, and watch history")
}

func upsertUser(db *sql.DB, username, email, fullName, hash string) string {
	var id string
	err := db.QueryRow(`
		INSERT INTO users (username, email, full_name, password, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET full_name = EXCLUDED.full_name
		RETURNING id
	`, username, email, fullName, hash, "https://storage.googleapis.com/cliphub-public/media/default-avatar.png").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", username, err)
	}
	return id
}
