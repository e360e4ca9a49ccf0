package email

import (
	"context"

	"github.com/vactrack/clinic-gateway/internal/model"
)

// Service sends transactional mail for the booking flow. A failure to send
// is logged by the caller and never fails the booking itself.
type Service interface {
	SendBookingConfirmation(ctx context.Context, to string, conf *model.BookingConfirmation) error
	SendPaymentReceipt(ctx context.Context, to string, info *model.PaymentInfo, status *model.PaymentStatus) error
}

// Noop is used when no SMTP server is configured.
type Noop struct{}

func (Noop) SendBookingConfirmation(context.Context, string, *model.BookingConfirmation) error {
	return nil
}

func (Noop) SendPaymentReceipt(context.Context, string, *model.PaymentInfo, *model.PaymentStatus) error {
	return nil
}
