package model

// Child is a child profile managed by a logged-in customer; stored by the
// upstream API, the gateway only proxies it.
type Child struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name" binding:"required,min=2"`
	DateOfBirth string `json:"date_of_birth" binding:"required"`
	Gender      string `json:"gender,omitempty"`
	BloodType   string `json:"blood_type,omitempty"`
	Allergies   string `json:"allergies,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
