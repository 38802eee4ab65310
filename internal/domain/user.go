package domain

// UserRole enumerates dashboard login roles.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleOps   UserRole = "ops"
	RoleStaff UserRole = "staff"
)

// User is a dashboard login account.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
}
