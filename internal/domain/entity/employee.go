package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access level assigned to an employee inside a tenant.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// Valid reports whether the role is one of the known access levels.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Employee is a staff member registered under a tenant.
type Employee struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	Phone     string
	Email     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
