package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP resolves the client address behind proxies and stores it in the
// context under "real_ip" for rate limiting and logs. CF-Connecting-IP wins
// over X-Forwarded-For; both must parse as a real address to be trusted.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("real_ip", resolveClientIP(c))
		c.Next()
	}
}

func resolveClientIP(c *gin.Context) string {
	if ip := validIP(c.GetHeader("CF-Connecting-IP")); ip != "" {
		return ip
	}
	// left-most X-Forwarded-For entry is the original client
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := validIP(first); ip != "" {
			return ip
		}
	}
	return c.ClientIP()
}

func validIP(s string) string {
	parsed := net.ParseIP(strings.TrimSpace(s))
	if parsed == nil {
		return ""
	}
	return parsed.String()
}
