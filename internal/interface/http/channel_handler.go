package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/cliphub/cliphub/internal/application"
	"github.com/cliphub/cliphub/internal/interface/middleware"
	"github.com/cliphub/cliphub/pkg/apperr"
	"github.com/cliphub/cliphub/pkg/response"
)

// ChannelHandler serves the aggregation views and channel search.
type ChannelHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewChannelHandler(svc *userapp.Service, logger *logrus.Logger) *ChannelHandler {
	return &ChannelHandler{Svc: svc, Logger: logger}
}

// Profile returns the channel view with subscriber counts and whether the
// caller is subscribed.
func (h *ChannelHandler) Profile(c *gin.Context) {
	username := c.Param("username")
	viewerID := c.GetString(middleware.CtxUserIDKey)

	profile, err := h.Svc.ChannelProfile(c.Request.Context(), username, viewerID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusOK, profile, "channel profile fetched successfully")
}

func (h *ChannelHandler) WatchHistory(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	entries, err := h.Svc.WatchHistory(c.Request.Context(), uid)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusOK, entries, "watch history fetched successfully")
}

func (h *ChannelHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		_ = c.Error(apperr.BadRequest("query is required"))
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.SearchChannels(c.Request.Context(), q, size)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, http.StatusOK, hits, "channels fetched successfully")
}
