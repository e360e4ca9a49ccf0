package model

// RoleAdmin is the role value that unlocks the back-office. The upstream
// VacTrack API issues it verbatim on the user record.
const RoleAdmin = "ADMIN"

// User is the identity record returned by the upstream API on login,
// register and /auth/user.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AuthResponse mirrors the upstream auth payload: a bearer token plus the
// user record, always issued together.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
