package repository

import (
	"context"
	"errors"

	"github.com/cliphub/cliphub/internal/domain/entity"
)

var (
	// ErrNotFound means no account matched the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means the username or email is already taken.
	ErrDuplicate = errors.New("duplicate account")
)

// UserPatch is a partial field update; nil fields are left untouched.
type UserPatch struct {
	FullName      *string
	Email         *string
	AvatarURL     *string
	CoverImageURL *string
}

// UserRepository is the persistence surface for account records.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error)
	// UpdateFields applies a partial patch and returns the updated row.
	UpdateFields(ctx context.Context, id string, patch UserPatch) (*entity.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// SetRefreshToken overwrites the account's single refresh-token slot;
	// an empty token clears it.
	SetRefreshToken(ctx context.Context, id, token string) error
}
