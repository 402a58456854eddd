package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cliphub/cliphub/internal/domain/entity"
	"github.com/cliphub/cliphub/internal/domain/repository"
)

const uniqueViolation = "23505"

const userColumns = `id, username, email, full_name, password, avatar_url, cover_image_url, COALESCE(refresh_token, ''), created_at, updated_at`

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (username, email, full_name, password, avatar_url, cover_image_url)
		VALUES (lower($1), $2, $3, $4, $5, $6)
		RETURNING id, username, created_at, updated_at
	`, u.Username, u.Email, u.FullName, u.Password, u.AvatarURL, u.CoverImageURL)

	if err := row.Scan(&u.ID, &u.Username, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUnique(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE username = lower($1) OR email = $1
	`, identifier)
	return scanUser(row)
}

// UpdateFields patches only the non-nil fields and returns the new row.
func (r *UserRepository) UpdateFields(ctx context.Context, id string, patch repository.UserPatch) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE users
		SET full_name       = COALESCE($2, full_name),
		    email           = COALESCE($3, email),
		    avatar_url      = COALESCE($4, avatar_url),
		    cover_image_url = COALESCE($5, cover_image_url),
		    updated_at      = now()
		WHERE id = $1
		RETURNING `+userColumns+`
	`, id, patch.FullName, patch.Email, patch.AvatarURL, patch.CoverImageURL)

	u, err := scanUser(row)
	if err != nil && isUnique(err) {
		return nil, repository.ErrDuplicate
	}
	return u, err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res, err := r.db.Exec(ctx, `
		UPDATE users SET password = $2, updated_at = now() WHERE id = $1
	`, id, passwordHash)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SetRefreshToken writes the single-slot refresh token without touching any
// other column. An empty token stores NULL, clearing the slot.
func (r *UserRepository) SetRefreshToken(ctx context.Context, id, token string) error {
	res, err := r.db.Exec(ctx, `
		UPDATE users SET refresh_token = NULLIF($2, '') WHERE id = $1
	`, id, token)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.Password,
		&u.AvatarURL, &u.CoverImageURL, &u.RefreshToken, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func isUnique(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

var _ repository.UserRepository = (*UserRepository)(nil)
