package models

// UserRole is the access level of a staff member
type UserRole string

const (
	RoleWaiter  UserRole = "WAITER"
	RoleManager UserRole = "MANAGER"
	RoleAdmin   UserRole = "ADMIN"
)

// Waiter is a staff member who can log in with a 4-digit PIN.
// PINs are stored and compared as plaintext.
type Waiter struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	PIN  string   `json:"pin"`
	Role UserRole `json:"role"`
}
