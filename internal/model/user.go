package model

import "time"

// Role is a user's authorization level. It is stored on the user row and
// embedded in issued tokens under the "auth" claim.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a user in the database.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SignupRequest represents a user signup request. Admin accounts require the
// configured admin signup token.
type SignupRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Admin      bool   `json:"admin"`
	AdminToken string `json:"adminToken"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login. The same token is also set
// on the Authorization response header with the Bearer prefix.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// UserResponse represents user data safe for API responses (no hash).
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
