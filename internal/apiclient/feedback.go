package apiclient

import (
	"context"
	"net/http"

	"github.com/vactrack/clinic-gateway/internal/model"
)

// SubmitContact forwards a contact form entry. The captcha fields are
// verified and stripped by the gateway before this call.
func (c *Client) SubmitContact(ctx context.Context, req *model.ContactRequest) error {
	payload := map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"phone":   req.Phone,
		"subject": req.Subject,
		"message": req.Message,
	}
	return c.do(ctx, http.MethodPost, "/contact", "", nil, payload, nil)
}

func (c *Client) SubmitFeedback(ctx context.Context, token string, req *model.FeedbackRequest) error {
	return c.do(ctx, http.MethodPost, "/feedback", token, nil, req, nil)
}
