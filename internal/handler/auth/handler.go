package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vactrack/clinic-gateway/internal/middleware"
	"github.com/vactrack/clinic-gateway/internal/model"
	"github.com/vactrack/clinic-gateway/internal/session"
	apperrors "github.com/vactrack/clinic-gateway/pkg/errors"
	"github.com/vactrack/clinic-gateway/pkg/httputil"
)

const cookieMaxAge = 24 * 60 * 60

type Handler struct {
	sessions   *session.Manager
	auth       *middleware.AuthMiddleware
	cookieName string
}

func NewHandler(sessions *session.Manager, auth *middleware.AuthMiddleware, cookieName string) *Handler {
	return &Handler{sessions: sessions, auth: auth, cookieName: cookieName}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/auth")
	{
		grp.POST("/login", h.Login)
		grp.POST("/register", h.Register)
		grp.POST("/logout", h.Logout)
		grp.GET("/me", h.auth.Authenticate(), h.Me)
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// Redirect is the path the user originally asked for, if any.
	Redirect string `json:"redirect"`
}

type authResponse struct {
	User       *model.User `json:"user"`
	RedirectTo string      `json:"redirect_to"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	sess, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrAuthFailed) {
			httputil.RespondWithError(c, apperrors.Unauthorized(err))
			return
		}
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}

	h.setCookie(c, sess.ID)
	httputil.RespondWithSuccess(c, authResponse{
		User:       sess.User,
		RedirectTo: session.PostLoginTarget(sess, req.Redirect),
	})
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	sess, err := h.sessions.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		httputil.RespondWithError(c, apperrors.Unauthorized(err))
		return
	}

	h.setCookie(c, sess.ID)
	c.JSON(http.StatusCreated, httputil.Response{
		Success: true,
		Data: authResponse{
			User:       sess.User,
			RedirectTo: session.PostLoginTarget(sess, ""),
		},
	})
}

// Logout clears the session (token and user together) and the cookie. It
// always succeeds, even without a session.
func (h *Handler) Logout(c *gin.Context) {
	sid, err := c.Cookie(h.cookieName)
	if err == nil && sid != "" {
		_ = h.sessions.Logout(c.Request.Context(), sid)
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	httputil.RespondWithSuccess(c, gin.H{"logged_out": true})
}

func (h *Handler) Me(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	httputil.RespondWithSuccess(c, gin.H{
		"user":     sess.User,
		"is_admin": sess.IsAdmin(),
	})
}

func (h *Handler) setCookie(c *gin.Context, sid string) {
	c.SetCookie(h.cookieName, sid, cookieMaxAge, "/", "", false, true)
}
