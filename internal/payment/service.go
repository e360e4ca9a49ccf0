// Package payment renders transfer instructions for a confirmed booking and
// checks settlement against the upstream payment-status endpoint.
package payment

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/vactrack/clinic-gateway/internal/config"
	"github.com/vactrack/clinic-gateway/internal/model"
	"github.com/vactrack/clinic-gateway/pkg/logger"
)

// APIClient is the slice of the upstream client the payment flow needs.
type APIClient interface {
	CheckPayment(ctx context.Context, token, bookingID string) (*model.PaymentStatus, error)
}

type Service struct {
	api APIClient
	cfg config.PaymentConfig
	log *logger.Logger
}

func NewService(api APIClient, cfg config.PaymentConfig, log *logger.Logger) *Service {
	return &Service{api: api, cfg: cfg, log: log}
}

// Reference builds the transfer reference for a booking.
func (s *Service) Reference(bookingID string) string {
	return "VT" + bookingID
}

// QRCodeURL builds the QR image URL encoding bank, account, payee, exact
// amount and the transfer reference. The QR is regenerable on demand; the
// URL is deterministic for a given booking.
func (s *Service) QRCodeURL(info *model.PaymentInfo) string {
	data := fmt.Sprintf("%s|%s|%s|%d|%s",
		s.cfg.BankName,
		s.cfg.AccountNumber,
		s.cfg.AccountName,
		info.Amount,
		s.Reference(info.BookingID),
	)

	q := url.Values{}
	q.Set("size", "200x200")
	q.Set("data", data)
	return s.cfg.QRServiceURL + "?" + q.Encode()
}

// BankTransfer returns the manual-transfer instructions shown next to the QR
// code.
func (s *Service) BankTransfer(info *model.PaymentInfo) model.BankTransfer {
	return model.BankTransfer{
		BankName:      s.cfg.BankName,
		AccountNumber: s.cfg.AccountNumber,
		AccountName:   s.cfg.AccountName,
		Reference:     s.Reference(info.BookingID),
		Amount:        info.Amount,
	}
}

// CheckStatus asks the upstream once whether the booking has been paid. The
// check is idempotent; the upstream remains the authority on settlement.
func (s *Service) CheckStatus(ctx context.Context, token, bookingID string) (*model.PaymentStatus, error) {
	return s.api.CheckPayment(ctx, token, bookingID)
}

// AwaitCompletion polls the status check on a fixed interval until the
// payment completes or fails, or ctx expires. It replaces the old
// fixed-delay fake confirmation.
func (s *Service) AwaitCompletion(ctx context.Context, token, bookingID string) (*model.PaymentStatus, error) {
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		status, err := s.CheckStatus(ctx, token, bookingID)
		if err != nil {
			return nil, err
		}
		if status.Status != model.PaymentStatePending {
			s.log.Info("payment settled", "booking_id", bookingID, "status", string(status.Status))
			return status, nil
		}

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-ticker.C:
		}
	}
}
