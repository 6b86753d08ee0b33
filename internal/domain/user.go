package domain

import "time"

// Role is the closed set of privilege levels a user can hold.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the stored identity record. Exactly one user exists per email
// (emails are compared byte-for-byte; no case folding is applied).
// PasswordHash never leaves the persistence and auth layers.
type User struct {
	ID           string    `bson:"id"`
	Email        string    `bson:"email"`
	Name         string    `bson:"name"`
	Role         Role      `bson:"role"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}
