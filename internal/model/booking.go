package model

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Payment methods offered on the booking form.
const (
	PaymentMethodDirect  = "direct"
	PaymentMethodBanking = "banking"
	PaymentMethodOnline  = "online"
)

// BookingDraft is the in-progress appointment request assembled across the
// form steps. It is validated as a whole on submit; once submitted it is not
// mutated again.
type BookingDraft struct {
	PatientName     string `json:"patient_name" validate:"required,min=2"`
	PatientDOB      string `json:"patient_dob" validate:"required"`
	ServiceType     string `json:"service_type" validate:"required"`
	PackageType     string `json:"package_type" validate:"required"`
	FacilityID      string `json:"facility_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
	Notes           string `json:"notes,omitempty" validate:"max=1000"`
	PaymentMethod   string `json:"payment_method" validate:"required,oneof=direct banking online"`
}

// Booking is the record sent to the upstream API once a draft passes
// validation.
type Booking struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	PatientName     string        `json:"patient_name"`
	PatientDOB      string        `json:"patient_dob"`
	ServiceType     string        `json:"service_type"`
	PackageType     string        `json:"package_type"`
	FacilityID      string        `json:"facility_id"`
	AppointmentDate string        `json:"appointment_date"`
	AppointmentTime string        `json:"appointment_time"`
	Notes           string        `json:"notes,omitempty"`
	Status          BookingStatus `json:"status"`
	CreatedAt       string        `json:"created_at,omitempty"`
}

// BookingConfirmation is the outcome of a submitted draft. For pay-on-site
// bookings Payment is nil and the booking is complete immediately; for
// banking/online the caller continues to the payment flow with Payment.
type BookingConfirmation struct {
	Booking   *Booking     `json:"booking"`
	Amount    int64        `json:"amount"`
	Completed bool         `json:"completed"`
	Payment   *PaymentInfo `json:"payment,omitempty"`
}

// FieldError is a per-field validation message; violations block submission
// and no upstream call is made.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
