package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliphub/cliphub/internal/domain/entity"
	"github.com/cliphub/cliphub/internal/domain/repository"
)

func userRows() *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{
		"id", "username", "email", "full_name", "password",
		"avatar_url", "cover_image_url", "coalesce", "created_at", "updated_at",
	}).AddRow(
		"11111111-1111-1111-1111-111111111111", "demouser", "demo@example.com", "Demo User",
		"$2a$10$hash", "https://cdn/avatar.png", "", "stored-refresh-token", now, now,
	)
}

func TestCreate_ScansGeneratedColumns(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("DemoUser", "demo@example.com", "Demo User", "$2a$10$hash", "https://cdn/avatar.png", "").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "created_at", "updated_at"}).
			AddRow("11111111-1111-1111-1111-111111111111", "demouser", now, now))

	repo := NewUserRepository(mock)
	u := &entity.User{
		Username:  "DemoUser",
		Email:     "demo@example.com",
		FullName:  "Demo User",
		Password:  "$2a$10$hash",
		AvatarURL: "https://cdn/avatar.png",
	}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", u.ID)
	assert.Equal(t, "demouser", u.Username, "stored username comes back lowercased")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolationIsDuplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	repo := NewUserRepository(mock)
	err = repo.Create(context.Background(), &entity.User{Username: "x", Email: "x@x", FullName: "x", Password: "x", AvatarURL: "x"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestGetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`(?s)SELECT .+ FROM users`).
		WithArgs("missing-id").
		WillReturnError(pgx.ErrNoRows)

	repo := NewUserRepository(mock)
	_, err = repo.GetByID(context.Background(), "missing-id")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetByUsernameOrEmail_ScansUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`(?s)SELECT .+ FROM users`).
		WithArgs("demouser").
		WillReturnRows(userRows())

	repo := NewUserRepository(mock)
	u, err := repo.GetByUsernameOrEmail(context.Background(), "demouser")
	require.NoError(t, err)
	assert.Equal(t, "demo@example.com", u.Email)
	assert.Equal(t, "stored-refresh-token", u.RefreshToken)
}

func TestUpdateFields_PassesNilForUntouchedColumns(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	fullName := "Renamed"
	mock.ExpectQuery(`UPDATE users`).
		WithArgs("11111111-1111-1111-1111-111111111111", &fullName, (*string)(nil), (*string)(nil), (*string)(nil)).
		WillReturnRows(userRows())

	repo := NewUserRepository(mock)
	_, err = repo.UpdateFields(context.Background(), "11111111-1111-1111-1111-111111111111",
		repository.UserPatch{FullName: &fullName})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePassword_NoRowIsNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE users SET password`).
		WithArgs("missing-id", "$2a$10$newhash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewUserRepository(mock)
	err = repo.UpdatePassword(context.Background(), "missing-id", "$2a$10$newhash")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSetRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE users SET refresh_token`).
		WithArgs("11111111-1111-1111-1111-111111111111", "new-token").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewUserRepository(mock)
	require.NoError(t, repo.SetRefreshToken(context.Background(), "11111111-1111-1111-1111-111111111111", "new-token"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
