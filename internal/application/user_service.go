package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/sirupsen/logrus"

	"github.com/cliphub/cliphub/internal/domain/entity"
	repo "github.com/cliphub/cliphub/internal/domain/repository"
	"github.com/cliphub/cliphub/pkg/apperr"
	"github.com/cliphub/cliphub/pkg/helpers"
	"github.com/cliphub/cliphub/pkg/mailer"
	"github.com/cliphub/cliphub/pkg/uploader"
)

// MediaUploader pushes a locally staged file to the media provider. A nil
// result means the upload did not happen; callers decide fatality.
type MediaUploader interface {
	Upload(ctx context.Context, localPath string) *uploader.Result
}

// EmailPublisher enqueues email jobs; publishing is always best effort.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// Service implements the account flows: registration, the access/refresh
// session pair, profile mutation, and the channel read views.
type Service struct {
	Repo        repo.UserRepository
	Channels    repo.ChannelRepository
	JWT         *helpers.JWTManager
	Media       MediaUploader
	Pub         EmailPublisher
	MailEnabled bool
	ES          *elasticsearch.Client
	ESIndex     string
	Logger      *logrus.Logger
}

func NewService(users repo.UserRepository, channels repo.ChannelRepository, jwt *helpers.JWTManager,
	media MediaUploader, pub EmailPublisher, mailEnabled bool,
	es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *Service {
	return &Service{
		Repo:        users,
		Channels:    channels,
		JWT:         jwt,
		Media:       media,
		Pub:         pub,
		MailEnabled: mailEnabled,
		ES:          es,
		ESIndex:     esIndex,
		Logger:      logger,
	}
}

// TokenPair is minted per login/refresh; the refresh token is also persisted
// into the account's single slot.
type TokenPair struct {
	AccessToken        string    `json:"accessToken"`
	AccessTokenExpiry  time.Time `json:"accessTokenExpiry"`
	RefreshToken       string    `json:"refreshToken"`
	RefreshTokenExpiry time.Time `json:"refreshTokenExpiry"`
}

type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string
	// Local staging paths from the multipart form; CoverPath may be empty.
	AvatarPath string
	CoverPath  string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.Public, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Password = strings.TrimSpace(in.Password)
	if in.Username == "" || in.Email == "" || in.FullName == "" || in.Password == "" {
		return nil, apperr.BadRequest("all fields are required")
	}

	if _, err := s.Repo.GetByUsernameOrEmail(ctx, in.Username); err == nil {
		return nil, apperr.Conflict("user with this email or username already exists")
	}
	if _, err := s.Repo.GetByUsernameOrEmail(ctx, in.Email); err == nil {
		return nil, apperr.Conflict("user with this email or username already exists")
	}

	if in.AvatarPath == "" {
		return nil, apperr.BadRequest("avatar file is required")
	}
	avatar := s.Media.Upload(ctx, in.AvatarPath)
	if avatar == nil {
		return nil, apperr.BadRequest("could not upload avatar")
	}
	coverURL := ""
	if cover := s.Media.Upload(ctx, in.CoverPath); cover != nil {
		coverURL = cover.URL
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Internal("something went wrong while registering the user")
	}

	u := &entity.User{
		Username:      strings.ToLower(in.Username),
		Email:         in.Email,
		FullName:      in.FullName,
		Password:      hash,
		AvatarURL:     avatar.URL,
		CoverImageURL: coverURL,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, apperr.Conflict("user with this email or username already exists")
		}
		return nil, apperr.Internal("something went wrong while registering the user")
	}

	// Re-read so the response reflects exactly what was persisted, minus the
	// credential fields.
	created, err := s.Repo.GetByID(ctx, u.ID)
	if err != nil {
		return nil, apperr.Internal("something went wrong while registering the user")
	}

	s.sendWelcomeEmail(ctx, created)
	s.indexChannel(ctx, created)

	sanitized := created.Sanitized()
	return &sanitized, nil
}

// Login authenticates by username or email. Unknown identifier and wrong
// password are distinct failures; neither issues tokens.
func (s *Service) Login(ctx context.Context, identifier, password string) (*entity.Public, TokenPair, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, TokenPair{}, apperr.BadRequest("username or email is required")
	}
	u, err := s.Repo.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		return nil, TokenPair{}, apperr.NotFound("user does not exist")
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, TokenPair{}, apperr.Unauthorized("invalid user credentials")
	}
	pair, err := s.IssuePair(ctx, u.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	sanitized := u.Sanitized()
	return &sanitized, pair, nil
}

// IssuePair loads the account, signs both tokens, and persists the refresh
// token into the account's slot. This step is not expected to fail under
// normal operation; any failure is a server fault.
func (s *Service) IssuePair(ctx context.Context, userID string) (TokenPair, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return TokenPair{}, apperr.Internal("something went wrong while generating tokens")
	}
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, u.Username, u.Email)
	if err != nil {
		return TokenPair{}, apperr.Internal("something went wrong while generating tokens")
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID)
	if err != nil {
		return TokenPair{}, apperr.Internal("something went wrong while generating tokens")
	}
	if err := s.Repo.SetRefreshToken(ctx, u.ID, refresh); err != nil {
		return TokenPair{}, apperr.Internal("something went wrong while generating tokens")
	}
	return TokenPair{
		AccessToken:        access,
		AccessTokenExpiry:  aexp,
		RefreshToken:       refresh,
		RefreshTokenExpiry: rexp,
	}, nil
}

// Refresh rotates the pair. The presented token must verify and must equal
// the account's stored refresh token; concurrent refreshes race on the slot
// and the loser is rejected here.
func (s *Service) Refresh(ctx context.Context, presented string) (TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(presented)
	if err != nil {
		return TokenPair{}, apperr.Unauthorized(err.Error())
	}
	u, err := s.Repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return TokenPair{}, apperr.Unauthorized("invalid refresh token")
	}
	if u.RefreshToken == "" || u.RefreshToken != presented {
		return TokenPair{}, apperr.Unauthorized("refresh token is expired or used")
	}
	return s.IssuePair(ctx, u.ID)
}

// Logout clears the stored refresh token so the previously issued one can no
// longer be exchanged.
func (s *Service) Logout(ctx context.Context, userID string) error {
	if err := s.Repo.SetRefreshToken(ctx, userID, ""); err != nil {
		return apperr.Internal("something went wrong while logging out")
	}
	return nil
}

func (s *Service) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return apperr.NotFound("user does not exist")
	}
	if !helpers.CompareHashAndPassword(u.Password, oldPassword) {
		return apperr.BadRequest("invalid old password")
	}
	// The only other place a hash is produced is registration; password
	// updates are always explicit, never a side effect of a field patch.
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return apperr.Internal("something went wrong while changing the password")
	}
	if err := s.Repo.UpdatePassword(ctx, userID, hash); err != nil {
		return apperr.Internal("something went wrong while changing the password")
	}
	return nil
}

func (s *Service) CurrentUser(ctx context.Context, userID string) (*entity.Public, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperr.NotFound("user does not exist")
	}
	sanitized := u.Sanitized()
	return &sanitized, nil
}

// UpdateAccount patches full name and email. This is strictly a patch; the
// account is never deleted here.
func (s *Service) UpdateAccount(ctx context.Context, userID, fullName, email string) (*entity.Public, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	if fullName == "" || email == "" {
		return nil, apperr.BadRequest("full name and email are required")
	}
	u, err := s.Repo.UpdateFields(ctx, userID, repo.UserPatch{FullName: &fullName, Email: &email})
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicate):
			return nil, apperr.Conflict("email is already in use")
		case errors.Is(err, repo.ErrNotFound):
			return nil, apperr.NotFound("user does not exist")
		}
		return nil, apperr.Internal("something went wrong while updating the account")
	}
	s.indexChannel(ctx, u)
	sanitized := u.Sanitized()
	return &sanitized, nil
}

// UpdateAvatar uploads the staged file and patches the avatar URL.
func (s *Service) UpdateAvatar(ctx context.Context, userID, localPath string) (*entity.Public, error) {
	return s.updateImage(ctx, userID, localPath, "avatar", func(url string) repo.UserPatch {
		return repo.UserPatch{AvatarURL: &url}
	})
}

// UpdateCoverImage uploads the staged file and patches the cover image URL.
func (s *Service) UpdateCoverImage(ctx context.Context, userID, localPath string) (*entity.Public, error) {
	return s.updateImage(ctx, userID, localPath, "cover image", func(url string) repo.UserPatch {
		return repo.UserPatch{CoverImageURL: &url}
	})
}

func (s *Service) updateImage(ctx context.Context, userID, localPath, kind string, patch func(url string) repo.UserPatch) (*entity.Public, error) {
	if localPath == "" {
		return nil, apperr.BadRequest(kind + " file is missing")
	}
	res := s.Media.Upload(ctx, localPath)
	if res == nil {
		return nil, apperr.BadRequest("error while uploading " + kind)
	}
	u, err := s.Repo.UpdateFields(ctx, userID, patch(res.URL))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("user does not exist")
		}
		return nil, apperr.Internal("something went wrong while updating the " + kind)
	}
	s.indexChannel(ctx, u)
	sanitized := u.Sanitized()
	return &sanitized, nil
}

func (s *Service) sendWelcomeEmail(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: "welcome",
		Data:     map[string]any{"FullName": u.FullName, "Username": u.Username},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email enqueue failed")
	}
}
