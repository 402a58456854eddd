package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cliphub/cliphub/internal/container"
	handlers "github.com/cliphub/cliphub/internal/interface/http"
	"github.com/cliphub/cliphub/internal/interface/middleware"
	"github.com/cliphub/cliphub/pkg/helpers"
)

// UserModule wires the account routes.
// Public: register, login, refresh-token.
// Protected: logout, change-password, current-user, update-account,
// avatar, cover-image, channel profile, watch history.
type UserModule struct {
	Handler  *handlers.UserHandler
	Channels *handlers.ChannelHandler
	JWT      *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, ch *handlers.ChannelHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, Channels: ch, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	users := rg.Group("/users")

	users.POST("/register", registerLimiter, m.Handler.Register)
	users.POST("/login", loginLimiter, m.Handler.Login)
	users.POST("/refresh-token", refreshLimiter, m.Handler.Refresh)

	auth := users.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.POST("/change-password", m.Handler.ChangePassword)
		auth.GET("/current-user", m.Handler.CurrentUser)
		auth.PATCH("/update-account", m.Handler.UpdateAccount)
		auth.PATCH("/avatar", m.Handler.UpdateAvatar)
		auth.PATCH("/cover-image", m.Handler.UpdateCoverImage)
		auth.GET("/c/:username", m.Channels.Profile)
		auth.GET("/history", m.Channels.WatchHistory)
	}
}
