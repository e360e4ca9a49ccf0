package model

// ContactRequest is the public contact form payload. Guarded by a captcha at
// the gateway before it reaches the upstream.
type ContactRequest struct {
	Name          string `json:"name" binding:"required,min=2"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone,omitempty"`
	Subject       string `json:"subject" binding:"required"`
	Message       string `json:"message" binding:"required"`
	CaptchaID     string `json:"captcha_id" binding:"required"`
	CaptchaAnswer string `json:"captcha_answer" binding:"required"`
}

// FeedbackRequest is the service feedback form payload.
type FeedbackRequest struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
	Page    string `json:"page,omitempty"`
}
