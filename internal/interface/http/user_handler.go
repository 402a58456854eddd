package handlers

import (
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	userapp "github.com/cliphub/cliphub/internal/application"
	"github.com/cliphub/cliphub/internal/interface/middleware"
	"github.com/cliphub/cliphub/pkg/apperr"
	"github.com/cliphub/cliphub/pkg/helpers"
	"github.com/cliphub/cliphub/pkg/response"
	"github.com/cliphub/cliphub/pkg/validation"
)

// UserHandler owns the account endpoints. Failures go through c.Error to the
// boundary middleware; success responses use the envelope directly.
type UserHandler struct {
	Svc     *userapp.Service
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
	TempDir string
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger, cookies *helpers.CookieManager, tempDir string) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Cookies: cookies, TempDir: tempDir}
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,pwd"`
}

type updateAccountRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// Register handles the multipart registration form: username, email,
// fullName, password plus an avatar file (required) and coverImage
// (optional).
func (h *UserHandler) Register(c *gin.Context) {
	in := userapp.RegisterInput{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		FullName: c.PostForm("fullName"),
		Password: c.PostForm("password"),
	}

	avatarPath, err := h.stageFile(c, "avatar")
	if err != nil {
		_ = c.Error(err)
		return
	}
	coverPath, err := h.stageFile(c, "coverImage")
	if err != nil {
		_ = c.Error(err)
		return
	}
	in.AvatarPath = avatarPath
	in.CoverPath = coverPath

	created, err := h.Svc.Register(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusCreated, created, "user registered successfully")
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("invalid payload", validation.ToList(err)...))
		return
	}
	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}

	user, pair, err := h.Svc.Login(c.Request.Context(), identifier, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.OK(c, http.StatusOK, gin.H{
		"user":         user,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "user logged in successfully")
}

func (h *UserHandler) Logout(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Logout(c.Request.Context(), uid); err != nil {
		_ = c.Error(err)
		return
	}
	h.Cookies.Clear(c)
	response.OK[any](c, http.StatusOK, nil, "user logged out")
}

// Refresh exchanges the refresh token, from cookie or body, for a new pair.
func (h *UserHandler) Refresh(c *gin.Context) {
	token, _ := c.Cookie(helpers.RefreshTokenCookie)
	if token == "" {
		var req refreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		_ = c.Error(apperr.Unauthorized("unauthorized request"))
		return
	}

	pair, err := h.Svc.Refresh(c.Request.Context(), token)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.OK(c, http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "access token refreshed")
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("invalid payload", validation.ToList(err)...))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.ChangePassword(c.Request.Context(), uid, req.OldPassword, req.NewPassword); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK[any](c, http.StatusOK, nil, "password changed successfully")
}

func (h *UserHandler) CurrentUser(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	user, err := h.Svc.CurrentUser(c.Request.Context(), uid)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusOK, user, "current user fetched successfully")
}

func (h *UserHandler) UpdateAccount(c *gin.Context) {
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("invalid payload", validation.ToList(err)...))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	user, err := h.Svc.UpdateAccount(c.Request.Context(), uid, req.FullName, req.Email)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusOK, user, "account details updated successfully")
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	path, err := h.stageFile(c, "avatar")
	if err != nil {
		_ = c.Error(err)
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	user, err := h.Svc.UpdateAvatar(c.Request.Context(), uid, path)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusOK, user, "avatar updated successfully")
}

func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	path, err := h.stageFile(c, "coverImage")
	if err != nil {
		_ = c.Error(err)
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	user, err := h.Svc.UpdateCoverImage(c.Request.Context(), uid, path)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusOK, user, "cover image updated successfully")
}

// stageFile saves an uploaded form file into the local staging directory and
// returns its path. A missing file is not an error; the service decides
// whether it is required.
func (h *UserHandler) stageFile(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	dst := filepath.Join(h.TempDir, uuid.NewString()+safeExt(file))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", apperr.Internal("could not stage uploaded file")
	}
	return dst, nil
}

func safeExt(file *multipart.FileHeader) string {
	ext := filepath.Ext(file.Filename)
	if len(ext) > 10 {
		return ""
	}
	return ext
}
