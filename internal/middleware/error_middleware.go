package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/coursecat/internal/pkg/logger"
)

// Recovery converts panics into a logged 500 instead of dropping the
// connection. Storage faults are handled explicitly in the handlers; this is
// the backstop for everything else.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic while handling request")
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
