package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/socialpedia/backend/server/token"
	"github.com/socialpedia/backend/utils"
)

const (
	bearerPrefix = "Bearer "

	// SubHeader carries the verified acting user id after the middleware ran.
	// It is scrubbed from the inbound request first so a client can never
	// smuggle an identity past verification.
	SubHeader = "sub"
)

// Auth middleware fetches the bearer token from the Authorization header,
// verifies it against the server secret and rewrites the request with a "sub"
// header holding the authenticated user id. It aborts with 401 on token not
// provided or token is invalid (wrong signature or expired), so no handler
// runs and no store access happens for unauthenticated requests.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Header.Del(SubHeader)

		raw := extractBearer(c)
		if raw == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": utils.ErrorTokenMissing,
				"msg":  "missing bearer token",
			})
			c.Abort()
			return
		}

		sub, err := tokens.Verify(raw)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": utils.ErrorTokenAuthFail,
				"msg":  err.Error(),
			})
			c.Abort()
			return
		}

		// Successfully validated the token, replace the Authorization header
		// with the verified user id so downstream handlers read one canonical
		// place.
		c.Request.Header.Del("Authorization")
		c.Request.Header.Set(SubHeader, sub)

		c.Next()
	}
}

// ActingUser returns the authenticated user id set by Auth, or the raw "sub"
// header when the server runs with auth bypassed for local debugging.
func ActingUser(c *gin.Context) string {
	return c.Request.Header.Get(SubHeader)
}

func extractBearer(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, bearerPrefix)
}
