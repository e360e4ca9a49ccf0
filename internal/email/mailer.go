package email

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/vactrack/clinic-gateway/internal/config"
	"github.com/vactrack/clinic-gateway/internal/model"
)

// Mailer is the SMTP implementation of Service.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// NewService picks the SMTP mailer when configured, Noop otherwise.
func NewService(cfg config.SMTPConfig) Service {
	if cfg.Host == "" {
		return Noop{}
	}
	return NewMailer(cfg)
}

func (m *Mailer) SendBookingConfirmation(_ context.Context, to string, conf *model.BookingConfirmation) error {
	b := conf.Booking
	body := fmt.Sprintf(
		"<p>Lịch tiêm của bạn đã được ghi nhận.</p>"+
			"<p>Mã đặt lịch: <b>%s</b><br>Bệnh nhân: %s<br>Thời gian: %s %s<br>Tổng tiền: %d VND</p>",
		b.ID, b.PatientName, b.AppointmentDate, b.AppointmentTime, conf.Amount,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "VacTrack - Xác nhận đặt lịch tiêm chủng")
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}

func (m *Mailer) SendPaymentReceipt(_ context.Context, to string, info *model.PaymentInfo, status *model.PaymentStatus) error {
	body := fmt.Sprintf(
		"<p>Chúng tôi đã nhận được thanh toán của bạn.</p>"+
			"<p>Mã đặt lịch: <b>%s</b><br>Số tiền: %d VND<br>Mã giao dịch: %s</p>",
		info.BookingID, info.Amount, status.TransactionID,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "VacTrack - Xác nhận thanh toán")
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}
