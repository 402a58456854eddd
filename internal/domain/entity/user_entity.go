package entity

import (
	"time"
)

// User is the account record. Password holds a bcrypt hash and RefreshToken
// is the single live refresh credential for the account (empty when logged
// out). The entity is plain data; token signing and hashing live in services.
type User struct {
	ID            string
	Username      string // stored lowercase, globally unique
	Email         string // globally unique
	FullName      string
	Password      string
	AvatarURL     string
	CoverImageURL string
	RefreshToken  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Public is the sanitized projection returned by every read endpoint.
// Password and RefreshToken never appear here.
type Public struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	AvatarURL     string    `json:"avatar"`
	CoverImageURL string    `json:"coverImage,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Sanitized strips the credential fields from a User.
func (u *User) Sanitized() Public {
	return Public{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		FullName:      u.FullName,
		AvatarURL:     u.AvatarURL,
		CoverImageURL: u.CoverImageURL,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
