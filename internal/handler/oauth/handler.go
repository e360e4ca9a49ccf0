package oauth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vactrack/clinic-gateway/internal/session"
	"github.com/vactrack/clinic-gateway/pkg/httputil"
)

// loginRedirectDelayMS is how long the redirect page shows the failure
// message before sending the user back to /login.
const loginRedirectDelayMS = 3000

type Handler struct {
	sessions   *session.Manager
	cookieName string
}

func NewHandler(sessions *session.Manager, cookieName string) *Handler {
	return &Handler{sessions: sessions, cookieName: cookieName}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/oauth2/redirect", h.Complete)
	r.GET("/auth/google/callback", h.Complete)
	r.GET("/auth/facebook/callback", h.Complete)
}

// Complete finishes an OAuth login from the redirect URL's query: a direct
// token, an authorization code to exchange, or an error. Every failure takes
// the same path: message plus a delayed redirect to /login; nothing retries.
func (h *Handler) Complete(c *gin.Context) {
	result, err := h.sessions.CompleteOAuthRedirect(
		c.Request.Context(),
		c.Request.URL.Path,
		c.Request.URL.Query(),
	)
	if err != nil {
		message := "Đã xảy ra lỗi trong quá trình xác thực."
		var oauthErr *session.OAuthError
		if errors.As(err, &oauthErr) {
			message = oauthErr.Message
		}
		c.JSON(http.StatusUnauthorized, httputil.Response{
			Success: false,
			Error:   &httputil.Error{Code: http.StatusUnauthorized, Message: message},
			Data: gin.H{
				"redirect_to":    session.RedirectLogin,
				"retry_after_ms": loginRedirectDelayMS,
			},
		})
		return
	}

	c.SetCookie(h.cookieName, result.Session.ID, 24*60*60, "/", "", false, true)
	httputil.RespondWithSuccess(c, gin.H{
		"user":        result.Session.User,
		"redirect_to": result.RedirectTo,
	})
}
