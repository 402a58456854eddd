package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cliphub/cliphub/pkg/apperr"
	"github.com/cliphub/cliphub/pkg/response"
)

// ErrorBoundary is the single place failures become response envelopes.
// Handlers attach errors with c.Error and return; whatever reaches here is
// normalized through apperr and rendered. Unknown errors are logged and
// surface as a generic Internal.
func ErrorBoundary(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		ae := apperr.From(err)
		if ae.Status >= http.StatusInternalServerError && logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"path":       c.Request.URL.Path,
				"request_id": c.GetString("request_id"),
			}).Error("request failed")
		}
		c.JSON(ae.Status, response.Fail(c, ae.Status, ae.Message, ae.Errs))
	}
}

// Recovery converts panics into the same failure envelope instead of a bare
// 500 so the response contract holds even for programmer errors.
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		if logger != nil {
			logger.WithFields(logrus.Fields{
				"panic":      recovered,
				"path":       c.Request.URL.Path,
				"request_id": c.GetString("request_id"),
			}).Error("panic recovered")
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			response.Fail(c, http.StatusInternalServerError, "something went wrong", nil))
	})
}

// Abort renders a failure immediately from middleware that must stop the
// chain before any handler runs.
func Abort(c *gin.Context, ae *apperr.Error) {
	c.AbortWithStatusJSON(ae.Status, response.Fail(c, ae.Status, ae.Message, ae.Errs))
}
