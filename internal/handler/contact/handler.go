package contact

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/vactrack/clinic-gateway/internal/captcha"
	"github.com/vactrack/clinic-gateway/internal/model"
	"github.com/vactrack/clinic-gateway/internal/session"
	apperrors "github.com/vactrack/clinic-gateway/pkg/errors"
	"github.com/vactrack/clinic-gateway/pkg/httputil"
)

// APIClient is the slice of the upstream client the public forms need.
type APIClient interface {
	SubmitContact(ctx context.Context, req *model.ContactRequest) error
	SubmitFeedback(ctx context.Context, token string, req *model.FeedbackRequest) error
}

type Handler struct {
	api        APIClient
	captcha    *captcha.Service
	sessions   *session.Manager
	cookieName string
}

func NewHandler(api APIClient, cap *captcha.Service, sessions *session.Manager, cookieName string) *Handler {
	return &Handler{api: api, captcha: cap, sessions: sessions, cookieName: cookieName}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/contact/captcha", h.Captcha)
	r.POST("/contact", h.SubmitContact)
	r.POST("/feedback", h.SubmitFeedback)
}

func (h *Handler) Captcha(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.captcha.Issue())
}

// SubmitContact verifies the captcha, then forwards the form. A wrong answer
// consumes the challenge; the client must fetch a fresh one.
func (h *Handler) SubmitContact(c *gin.Context) {
	var req model.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	if !h.captcha.Verify(req.CaptchaID, req.CaptchaAnswer) {
		httputil.RespondWithError(c, apperrors.BadRequest("mã xác nhận không đúng", nil))
		return
	}

	if err := h.api.SubmitContact(c.Request.Context(), &req); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"submitted": true})
}

// SubmitFeedback accepts the feedback widget from anyone; a logged-in
// session attaches the user's upstream token so the entry is attributed.
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req model.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	token := ""
	if sid, err := c.Cookie(h.cookieName); err == nil && sid != "" {
		if sess, err := h.sessions.Restore(c.Request.Context(), sid); err == nil {
			token = sess.Token
		}
	}

	if err := h.api.SubmitFeedback(c.Request.Context(), token, &req); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"submitted": true})
}
