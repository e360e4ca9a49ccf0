// Package booking implements the appointment workflow: draft validation,
// package/service gating, amount computation and the hand-off to the
// payment flow.
package booking

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vactrack/clinic-gateway/internal/catalog"
	"github.com/vactrack/clinic-gateway/internal/email"
	"github.com/vactrack/clinic-gateway/internal/model"
	"github.com/vactrack/clinic-gateway/pkg/errors"
	"github.com/vactrack/clinic-gateway/pkg/logger"
)

// APIClient is the slice of the upstream client the workflow needs.
type APIClient interface {
	CreateBooking(ctx context.Context, token string, booking *model.Booking) (*model.Booking, error)
	AvailableSlots(ctx context.Context, token, date, facilityID string) ([]model.BookingSlot, error)
}

// ErrIncompleteSelection gates the slot listing: both a date and a facility
// must be chosen first.
var ErrIncompleteSelection = errors.BadRequest("chọn ngày và cơ sở trước khi xem khung giờ", nil)

type Service struct {
	api      APIClient
	catalog  *catalog.Catalog
	mailer   email.Service
	validate *validator.Validate
	log      *logger.Logger
}

func NewService(api APIClient, cat *catalog.Catalog, mailer email.Service, log *logger.Logger) *Service {
	return &Service{
		api:      api,
		catalog:  cat,
		mailer:   mailer,
		validate: validator.New(),
		log:      log,
	}
}

// SelectService applies a service choice to a draft, resetting a previously
// selected package that does not belong to the new service.
func (s *Service) SelectService(draft *model.BookingDraft, serviceID string) {
	draft.ServiceType = serviceID
	if draft.PackageType != "" && !s.catalog.PackageBelongs(serviceID, draft.PackageType) {
		draft.PackageType = ""
	}
}

// Slots lists time-slot options. It only answers once both a date and a
// facility are chosen; before that the picker stays disabled.
func (s *Service) Slots(ctx context.Context, token, date, facilityID string) ([]model.BookingSlot, error) {
	if date == "" || facilityID == "" {
		return nil, ErrIncompleteSelection
	}
	if _, ok := s.catalog.Facility(facilityID); !ok {
		return nil, errors.NotFound("facility", nil)
	}

	slots, err := s.api.AvailableSlots(ctx, token, date, facilityID)
	if err != nil {
		// The upstream has no slot endpoint yet; availability is reference
		// data served from the catalog until it does.
		if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.ErrNotFound {
			return s.catalog.DefaultSlots(date, facilityID), nil
		}
		return nil, err
	}
	return slots, nil
}

// Validate checks a complete draft. Any violation blocks submission; the
// caller must not issue an upstream call while the list is non-empty.
func (s *Service) Validate(draft *model.BookingDraft) []model.FieldError {
	var fieldErrs []model.FieldError

	if err := s.validate.Struct(draft); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fieldErrs = append(fieldErrs, model.FieldError{
					Field:   fe.Field(),
					Message: messageFor(fe),
				})
			}
		} else {
			fieldErrs = append(fieldErrs, model.FieldError{Field: "draft", Message: err.Error()})
		}
	}

	if draft.PatientDOB != "" {
		dob, err := time.Parse("2006-01-02", draft.PatientDOB)
		switch {
		case err != nil:
			fieldErrs = append(fieldErrs, model.FieldError{
				Field: "PatientDOB", Message: "ngày sinh không hợp lệ",
			})
		case dob.After(time.Now()):
			fieldErrs = append(fieldErrs, model.FieldError{
				Field: "PatientDOB", Message: "ngày sinh không được ở tương lai",
			})
		}
	}

	if draft.ServiceType != "" && draft.PackageType != "" &&
		!s.catalog.PackageBelongs(draft.ServiceType, draft.PackageType) {
		fieldErrs = append(fieldErrs, model.FieldError{
			Field: "PackageType", Message: "gói tiêm không thuộc dịch vụ đã chọn",
		})
	}

	if _, ok := s.catalog.Facility(draft.FacilityID); draft.FacilityID != "" && !ok {
		fieldErrs = append(fieldErrs, model.FieldError{
			Field: "FacilityID", Message: "cơ sở không tồn tại",
		})
	}

	return fieldErrs
}

// Amount looks the package up in the static price table. Unknown packages
// price at 0; current behavior, kept deliberately.
func (s *Service) Amount(packageType string) int64 {
	price, _ := s.catalog.PriceOf(packageType)
	return price
}

// Submit validates the draft, creates the booking upstream and resolves the
// confirmation step. Pay-on-site bookings complete immediately; banking and
// online methods hand off PaymentInfo for the payment flow.
func (s *Service) Submit(ctx context.Context, sess *model.Session, draft *model.BookingDraft) (*model.BookingConfirmation, error) {
	if fieldErrs := s.Validate(draft); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	amount := s.Amount(draft.PackageType)
	booking := &model.Booking{
		ID:              newBookingID(),
		UserID:          sess.User.ID,
		PatientName:     draft.PatientName,
		PatientDOB:      draft.PatientDOB,
		ServiceType:     draft.ServiceType,
		PackageType:     draft.PackageType,
		FacilityID:      draft.FacilityID,
		AppointmentDate: draft.AppointmentDate,
		AppointmentTime: draft.AppointmentTime,
		Notes:           draft.Notes,
		Status:          model.BookingStatusPending,
	}

	created, err := s.api.CreateBooking(ctx, sess.Token, booking)
	if err != nil {
		return nil, err
	}

	conf := &model.BookingConfirmation{
		Booking: created,
		Amount:  amount,
	}

	if draft.PaymentMethod == model.PaymentMethodDirect {
		conf.Completed = true
	} else {
		facilityName := ""
		if f, ok := s.catalog.Facility(draft.FacilityID); ok {
			facilityName = f.Name
		}
		conf.Payment = &model.PaymentInfo{
			BookingID:       created.ID,
			Amount:          amount,
			ServiceType:     draft.ServiceType,
			PackageType:     draft.PackageType,
			FacilityName:    facilityName,
			AppointmentDate: draft.AppointmentDate,
			AppointmentTime: draft.AppointmentTime,
			PaymentMethod:   draft.PaymentMethod,
			Notes:           draft.Notes,
		}
	}

	if err := s.mailer.SendBookingConfirmation(ctx, sess.User.Email, conf); err != nil {
		s.log.Error(err, "failed to send booking confirmation email", "booking_id", created.ID)
	}

	return conf, nil
}

// ValidationError carries the per-field messages shown on the form.
type ValidationError struct {
	Fields []model.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("booking draft invalid: %d field(s)", len(e.Fields))
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "PatientName":
		return "tên bệnh nhân phải có ít nhất 2 ký tự"
	case "PatientDOB":
		return "vui lòng chọn ngày sinh"
	case "ServiceType":
		return "vui lòng chọn loại dịch vụ"
	case "PackageType":
		return "vui lòng chọn gói tiêm chủng"
	case "FacilityID":
		return "vui lòng chọn cơ sở tiêm chủng"
	case "AppointmentDate":
		return "vui lòng chọn ngày hẹn"
	case "AppointmentTime":
		return "vui lòng chọn giờ hẹn"
	case "PaymentMethod":
		return "vui lòng chọn phương thức thanh toán"
	default:
		return fe.Error()
	}
}

// newBookingID mints a booking id from a timestamp plus random suffix. The
// payment flow prefixes it with VT for the transfer reference. Server-side
// issuance is the eventual replacement.
func newBookingID() string {
	return fmt.Sprintf("%d%04d", time.Now().Unix(), rand.Intn(10000))
}
