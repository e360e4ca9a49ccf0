package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/vactrack/clinic-gateway/internal/model"
	"github.com/vactrack/clinic-gateway/internal/session"
	"github.com/vactrack/clinic-gateway/pkg/errors"
	"github.com/vactrack/clinic-gateway/pkg/httputil"
)

const sessionContextKey = "session"

type AuthMiddleware struct {
	sessions   *session.Manager
	cookieName string
}

func NewAuthMiddleware(sessions *session.Manager, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, cookieName: cookieName}
}

// Authenticate restores the session behind the request's cookie (or
// X-Session-ID header for non-browser clients) and aborts with 401 when
// there is none. Restoration is offline: the token is trusted until an
// upstream call rejects it.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(m.cookieName)
		if err != nil || sid == "" {
			sid = c.GetHeader("X-Session-ID")
		}

		sess, err := m.sessions.Restore(c.Request.Context(), sid)
		if err != nil {
			httputil.RespondWithError(c, errors.Unauthorized(err))
			c.Abort()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// RequireAdmin gates the back-office routes. Runs after Authenticate.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess == nil || !sess.IsAdmin() {
			httputil.RespondWithError(c, errors.Forbidden("admin role required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFrom returns the restored session, or nil outside Authenticate.
func SessionFrom(c *gin.Context) *model.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		return v.(*model.Session)
	}
	return nil
}
