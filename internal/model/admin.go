package model

import "encoding/json"

// DashboardStats is the admin dashboard summary from /admin/dashboard.
type DashboardStats struct {
	TotalAppointments int64 `json:"total_appointments"`
	TotalPatients     int64 `json:"total_patients"`
	TotalVaccines     int64 `json:"total_vaccines"`
	PendingFeedback   int64 `json:"pending_feedback"`
	RevenueThisMonth  int64 `json:"revenue_this_month"`
}

// AdminAppointment is one row of the back-office appointment list.
type AdminAppointment struct {
	ID              string `json:"id"`
	PatientName     string `json:"patient_name"`
	ServiceType     string `json:"service_type"`
	PackageType     string `json:"package_type,omitempty"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
}

// Vaccine is a back-office vaccine record.
type Vaccine struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name" binding:"required"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Price        int64  `json:"price,omitempty"`
	Stock        int    `json:"stock,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Page is a normalized slice of an upstream paginated listing. The upstream
// answers with {content, totalPages}; the API client folds that into this
// shape before it leaves the client package.
type Page struct {
	Content    json.RawMessage `json:"content"`
	Page       int             `json:"page"`
	Size       int             `json:"size"`
	TotalPages int             `json:"total_pages"`
	TotalItems int64           `json:"total_items"`
}
