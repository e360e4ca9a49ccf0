package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vactrack/clinic-gateway/internal/catalog"
	"github.com/vactrack/clinic-gateway/internal/email"
	"github.com/vactrack/clinic-gateway/internal/model"
	apperrors "github.com/vactrack/clinic-gateway/pkg/errors"
	"github.com/vactrack/clinic-gateway/pkg/logger"
)

type fakeAPI struct {
	created     *model.Booking
	createErr   error
	createCalls int

	slots     []model.BookingSlot
	slotsErr  error
	slotCalls int
}

func (f *fakeAPI) CreateBooking(_ context.Context, _ string, b *model.Booking) (*model.Booking, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	return b, nil
}

func (f *fakeAPI) AvailableSlots(_ context.Context, _, _, _ string) ([]model.BookingSlot, error) {
	f.slotCalls++
	return f.slots, f.slotsErr
}

func newTestService(api *fakeAPI) *Service {
	return NewService(api, catalog.New(), email.Noop{}, logger.NewLogger(nil))
}

func validDraft() *model.BookingDraft {
	return &model.BookingDraft{
		PatientName:     "Nguyễn Văn B",
		PatientDOB:      "2019-04-12",
		ServiceType:     "goi-tiem-chung-tron-goi",
		PackageType:     "co-ban",
		FacilityID:      "f1",
		AppointmentDate: "2026-09-15",
		AppointmentTime: "09:00",
		PaymentMethod:   model.PaymentMethodDirect,
	}
}

func testSession() *model.Session {
	return &model.Session{
		ID:    "s1",
		Token: "tok",
		User:  &model.User{ID: "u1", Name: "Nguyễn Văn A", Email: "a@example.com"},
	}
}

func TestSelectServiceResetsForeignPackage(t *testing.T) {
	s := newTestService(&fakeAPI{})

	draft := &model.BookingDraft{PackageType: "co-ban"}
	s.SelectService(draft, "tiem-chung-ca-the-hoa")

	assert.Equal(t, "tiem-chung-ca-the-hoa", draft.ServiceType)
	assert.Empty(t, draft.PackageType, "package from another service must be cleared")
}

func TestSelectServiceKeepsMatchingPackage(t *testing.T) {
	s := newTestService(&fakeAPI{})

	draft := &model.BookingDraft{PackageType: "co-ban"}
	s.SelectService(draft, "goi-tiem-chung-tron-goi")

	assert.Equal(t, "co-ban", draft.PackageType)
}

func TestValidateCompleteDraft(t *testing.T) {
	s := newTestService(&fakeAPI{})
	assert.Empty(t, s.Validate(validDraft()))
}

func TestValidateCatchesEveryViolation(t *testing.T) {
	s := newTestService(&fakeAPI{})

	tests := []struct {
		name   string
		mutate func(*model.BookingDraft)
		field  string
	}{
		{"short name", func(d *model.BookingDraft) { d.PatientName = "A" }, "PatientName"},
		{"missing dob", func(d *model.BookingDraft) { d.PatientDOB = "" }, "PatientDOB"},
		{"malformed dob", func(d *model.BookingDraft) { d.PatientDOB = "12/04/2019" }, "PatientDOB"},
		{"future dob", func(d *model.BookingDraft) { d.PatientDOB = time.Now().AddDate(1, 0, 0).Format("2006-01-02") }, "PatientDOB"},
		{"missing service", func(d *model.BookingDraft) { d.ServiceType = "" }, "ServiceType"},
		{"foreign package", func(d *model.BookingDraft) { d.PackageType = "ca-the-hoa-12" }, "PackageType"},
		{"unknown facility", func(d *model.BookingDraft) { d.FacilityID = "f99" }, "FacilityID"},
		{"missing time", func(d *model.BookingDraft) { d.AppointmentTime = "" }, "AppointmentTime"},
		{"bad payment method", func(d *model.BookingDraft) { d.PaymentMethod = "bitcoin" }, "PaymentMethod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(draft)

			errs := s.Validate(draft)
			require.NotEmpty(t, errs)

			found := false
			for _, fe := range errs {
				if fe.Field == tt.field {
					found = true
					assert.NotEmpty(t, fe.Message)
				}
			}
			assert.True(t, found, "expected an error on %s, got %v", tt.field, errs)
		})
	}
}

func TestSubmitBlockedByValidation(t *testing.T) {
	api := &fakeAPI{}
	s := newTestService(api)

	draft := validDraft()
	draft.PatientName = ""

	_, err := s.Submit(context.Background(), testSession(), draft)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.NotEmpty(t, valErr.Fields)
	assert.Zero(t, api.createCalls, "invalid draft must never reach the upstream")
}

func TestAmountFromPriceTable(t *testing.T) {
	s := newTestService(&fakeAPI{})

	assert.Equal(t, int64(1_500_000), s.Amount("co-ban"))
	assert.Equal(t, int64(2_800_000), s.Amount("tieu-chuan"))
	assert.Equal(t, int64(900_000), s.Amount("ca-the-hoa-6"))
	assert.Equal(t, int64(0), s.Amount("no-such-package"))
}

func TestSubmitDirectCompletesImmediately(t *testing.T) {
	api := &fakeAPI{}
	s := newTestService(api)

	conf, err := s.Submit(context.Background(), testSession(), validDraft())
	require.NoError(t, err)

	assert.True(t, conf.Completed)
	assert.Nil(t, conf.Payment)
	assert.Equal(t, int64(1_500_000), conf.Amount)
	assert.Equal(t, 1, api.createCalls)
	assert.NotEmpty(t, conf.Booking.ID)
}

func TestSubmitBankingHandsOffToPayment(t *testing.T) {
	api := &fakeAPI{}
	s := newTestService(api)

	draft := validDraft()
	draft.PaymentMethod = model.PaymentMethodBanking

	conf, err := s.Submit(context.Background(), testSession(), draft)
	require.NoError(t, err)

	assert.False(t, conf.Completed)
	require.NotNil(t, conf.Payment)
	assert.Equal(t, conf.Booking.ID, conf.Payment.BookingID)
	assert.Equal(t, int64(1_500_000), conf.Payment.Amount)
	assert.Equal(t, "VacTrack Trung tâm y tế Hà Nội", conf.Payment.FacilityName)
	assert.Equal(t, model.PaymentMethodBanking, conf.Payment.PaymentMethod)
}

func TestSubmitUpstreamFailure(t *testing.T) {
	api := &fakeAPI{createErr: apperrors.Unavailable("vactrack api unreachable", nil)}
	s := newTestService(api)

	_, err := s.Submit(context.Background(), testSession(), validDraft())
	require.Error(t, err)
}

func TestSlotsRequireDateAndFacility(t *testing.T) {
	api := &fakeAPI{}
	s := newTestService(api)

	_, err := s.Slots(context.Background(), "tok", "", "f1")
	assert.ErrorIs(t, err, ErrIncompleteSelection)

	_, err = s.Slots(context.Background(), "tok", "2026-09-15", "")
	assert.ErrorIs(t, err, ErrIncompleteSelection)

	assert.Zero(t, api.slotCalls)
}

func TestSlotsFallBackToCatalogGrid(t *testing.T) {
	api := &fakeAPI{slotsErr: apperrors.NotFound("slots", nil)}
	s := newTestService(api)

	slots, err := s.Slots(context.Background(), "tok", "2026-09-15", "f1")
	require.NoError(t, err)
	require.Len(t, slots, 12)

	unavailable := map[string]bool{"08:30": true, "10:00": true, "15:00": true}
	for _, slot := range slots {
		assert.Equal(t, !unavailable[slot.Time], slot.Available, "slot %s", slot.Time)
	}
}

func TestSlotsPreferUpstreamAnswer(t *testing.T) {
	api := &fakeAPI{slots: []model.BookingSlot{{ID: "1", Time: "08:00", Available: true}}}
	s := newTestService(api)

	slots, err := s.Slots(context.Background(), "tok", "2026-09-15", "f1")
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}
