package models

// UserRole represents the role stored with each user.
type UserRole string

const (
	// RoleAdmin is assigned to every registered user; roles are carried but not enforced.
	RoleAdmin UserRole = "admin"
)

// User represents an application user stored in the users table.
type User struct {
	ID           int64    `db:"id" json:"id"`
	Email        string   `db:"email" json:"email"`
	PasswordHash string   `db:"password_hash" json:"-"`
	Role         UserRole `db:"role" json:"role"`
}
