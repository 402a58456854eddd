package entity

import "time"

// Subscription is an edge between a subscriber account and a channel
// account. This service only reads it through the channel aggregation.
type Subscription struct {
	ID           string
	SubscriberID string
	ChannelID    string
	CreatedAt    time.Time
}

// ChannelProfile is the channel aggregation view: the sanitized account plus
// subscription counts and the viewer's subscription status.
type ChannelProfile struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	FullName        string    `json:"fullName"`
	AvatarURL       string    `json:"avatar"`
	CoverImageURL   string    `json:"coverImage,omitempty"`
	SubscriberCount int64     `json:"subscribersCount"`
	SubscribedTo    int64     `json:"channelsSubscribedToCount"`
	IsSubscribed    bool      `json:"isSubscribed"`
	CreatedAt       time.Time `json:"createdAt"`
}
