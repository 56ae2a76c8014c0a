package domain

import "time"

// Role represents the role of an authenticated user.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// User represents an authenticated customer in the system.
type User struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Role      Role
	CreatedAt time.Time
}

// Credential is a demo login entry. Matching is exact string equality;
// passwords are intentionally not hashed in demo mode.
type Credential struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Role     Role
}
