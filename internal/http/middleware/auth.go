package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/garage-routhier/go-garage-backend/internal/auth"
)

// sessionKey is the Gin context key under which the verified admin session
// is stored for downstream handlers.
const sessionKey = "adminSession"

// AdminAuth guards the back-office routes. It expects an
// "Authorization: Bearer <token>" header carrying a session token issued by
// the auth manager, verifies it, and stores the session in the Gin context.
//
// Responses use the standard error envelope:
//   - 401 "unauthorized"     when the header is missing or malformed
//   - 401 "session_expired"  when the token is valid but past its expiry
//   - 401 "invalid_token"    when the token fails verification
func AdminAuth(mgr *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthorized(c, "unauthorized", "missing or malformed Authorization header")
			return
		}

		sess, err := mgr.Verify(token)
		if err != nil {
			if errors.Is(err, auth.ErrSessionExpired) {
				abortUnauthorized(c, "session_expired", "session expired, please log in again")
				return
			}
			abortUnauthorized(c, "invalid_token", "invalid session token")
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFrom returns the admin session stored by AdminAuth. The boolean is
// false when the request did not pass the gate.
func SessionFrom(c *gin.Context) (auth.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return auth.Session{}, false
	}
	sess, ok := v.(auth.Session)
	return sess, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func abortUnauthorized(c *gin.Context, code, msg string) {
	c.Header("WWW-Authenticate", `Bearer realm="admin"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": RequestIDFrom(c),
		"code":       code,
		"message":    msg,
	})
}
