package payment

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vactrack/clinic-gateway/internal/email"
	"github.com/vactrack/clinic-gateway/internal/middleware"
	"github.com/vactrack/clinic-gateway/internal/model"
	paymentsvc "github.com/vactrack/clinic-gateway/internal/payment"
	apperrors "github.com/vactrack/clinic-gateway/pkg/errors"
	"github.com/vactrack/clinic-gateway/pkg/httputil"
	"github.com/vactrack/clinic-gateway/pkg/logger"
)

// confirmTimeout bounds how long a single confirm request keeps polling
// before handing the pending status back to the client.
const confirmTimeout = 90 * time.Second

type Handler struct {
	service *paymentsvc.Service
	mailer  email.Service
	auth    *middleware.AuthMiddleware
	log     *logger.Logger
}

func NewHandler(service *paymentsvc.Service, mailer email.Service, auth *middleware.AuthMiddleware, log *logger.Logger) *Handler {
	return &Handler{service: service, mailer: mailer, auth: auth, log: log}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/payment", h.auth.Authenticate())
	{
		grp.POST("/instructions", h.Instructions)
		grp.GET("/status/:bookingID", h.Status)
		grp.POST("/confirm", h.Confirm)
	}
}

type instructionsResponse struct {
	QRCodeURL    string             `json:"qr_code_url"`
	BankTransfer model.BankTransfer `json:"bank_transfer"`
}

// Instructions renders the transfer details for a pending booking: the QR
// image URL and the manual bank-transfer block it encodes.
func (h *Handler) Instructions(c *gin.Context) {
	var info model.PaymentInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}
	if info.BookingID == "" {
		httputil.RespondWithError(c, apperrors.BadRequest("booking_id is required", nil))
		return
	}

	httputil.RespondWithSuccess(c, instructionsResponse{
		QRCodeURL:    h.service.QRCodeURL(&info),
		BankTransfer: h.service.BankTransfer(&info),
	})
}

func (h *Handler) Status(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	status, err := h.service.CheckStatus(c.Request.Context(), sess.Token, c.Param("bookingID"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, status)
}

type confirmRequest struct {
	Info model.PaymentInfo `json:"payment_info" binding:"required"`
}

// Confirm polls the upstream until the transfer settles or the request
// times out, then emails a receipt on completion. A timeout is not a
// failure; the client may re-confirm the same booking.
func (h *Handler) Confirm(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}
	if req.Info.BookingID == "" {
		httputil.RespondWithError(c, apperrors.BadRequest("booking_id is required", nil))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), confirmTimeout)
	defer cancel()

	status, err := h.service.AwaitCompletion(ctx, sess.Token, req.Info.BookingID)
	if err != nil && status == nil {
		httputil.RespondWithError(c, err)
		return
	}

	if status.Status == model.PaymentStateCompleted {
		if err := h.mailer.SendPaymentReceipt(c.Request.Context(), sess.User.Email, &req.Info, status); err != nil {
			h.log.Error(err, "failed to send payment receipt", "booking_id", req.Info.BookingID)
		}
	}

	httputil.RespondWithSuccess(c, status)
}
