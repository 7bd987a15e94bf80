package users

import (
	"time"

	"github.com/google/uuid"
)

// Roles known to the system. Admins bypass every role gate.
const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
	RoleNurse  = "nurse"
)

// User is a staff account. Accounts start disabled (status=false) until
// an administrator toggles them on.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password" json:"-"`
	Role         string    `db:"role" json:"role"`
	Status       bool      `db:"status" json:"status"`
	DepartmentID *string   `db:"department_id" json:"department_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// UpdateFields carries the admin partial user update.
type UpdateFields struct {
	Role         *string
	Name         *string
	Email        *string
	DepartmentID *string
}

func (f UpdateFields) Empty() bool {
	return f.Role == nil && f.Name == nil && f.Email == nil && f.DepartmentID == nil
}
