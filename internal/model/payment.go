package model

// PaymentInfo is derived from a confirmed booking draft plus the generated
// booking id and computed amount. It is consumed once by the payment flow
// and not persisted.
type PaymentInfo struct {
	BookingID       string `json:"booking_id"`
	Amount          int64  `json:"amount"`
	ServiceType     string `json:"service_type"`
	PackageType     string `json:"package_type"`
	FacilityName    string `json:"facility_name"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	PaymentMethod   string `json:"payment_method"`
	Notes           string `json:"notes,omitempty"`
}

type PaymentState string

const (
	PaymentStatePending   PaymentState = "pending"
	PaymentStateCompleted PaymentState = "completed"
	PaymentStateFailed    PaymentState = "failed"
)

// PaymentStatus is the upstream's answer to a payment-status check.
type PaymentStatus struct {
	Status        PaymentState `json:"status"`
	TransactionID string       `json:"transaction_id,omitempty"`
	Message       string       `json:"message,omitempty"`
}

// BankTransfer carries the manual-transfer instructions shown alongside the
// QR code.
type BankTransfer struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	Reference     string `json:"reference"`
	Amount        int64  `json:"amount"`
}
