package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cliphub/cliphub/internal/container"
	handlers "github.com/cliphub/cliphub/internal/interface/http"
	"github.com/cliphub/cliphub/internal/interface/middleware"
	"github.com/cliphub/cliphub/pkg/helpers"
)

// ChannelModule wires channel search (Elasticsearch backed).
type ChannelModule struct {
	Handler *handlers.ChannelHandler
	JWT     *helpers.JWTManager
}

func NewChannelModule(h *handlers.ChannelHandler, jwt *helpers.JWTManager) *ChannelModule {
	return &ChannelModule{Handler: h, JWT: jwt}
}

func (m *ChannelModule) Register(rg *gin.RouterGroup) {
	channels := rg.Group("/channels")
	channels.Use(middleware.Auth(m.JWT))
	channels.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		channels.GET("/search", m.Handler.Search)
	}
}
