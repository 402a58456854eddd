package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cliphub/cliphub/pkg/apperr"
	"github.com/cliphub/cliphub/pkg/helpers"
)

const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "userName"
	CtxEmailKey    = "userEmail"
)

// Auth validates the access token from the accessToken cookie or an
// Authorization bearer header and injects the caller's identity into the
// Gin context.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := accessTokenFrom(c)
		if token == "" {
			Abort(c, apperr.Unauthorized("unauthorized request"))
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			Abort(c, apperr.Unauthorized("invalid access token", err.Error()))
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUsernameKey, claims.Username)
		c.Set(CtxEmailKey, claims.Email)
		c.Next()
	}
}

func accessTokenFrom(c *gin.Context) string {
	if token, err := c.Cookie(helpers.AccessTokenCookie); err == nil && token != "" {
		return token
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
