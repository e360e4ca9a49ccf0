package model

// Service is a bookable vaccination service.
type Service struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Package is a named bundle of vaccinations belonging to one service, with a
// static price in VND.
type Package struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ServiceID string `json:"service_id"`
	Price     int64  `json:"price"`
}

// Facility is a physical clinic location offered as a booking option.
type Facility struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	District     string `json:"district"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	OpeningHours string `json:"opening_hours"`
}

// BookingSlot is one time-slot option for a given date and facility.
type BookingSlot struct {
	ID        string `json:"id"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
