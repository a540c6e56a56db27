package domain

import "time"

// Role identifies one of the five actor kinds on the platform.
type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleClientAdmin Role = "client_admin"
	RoleProvider    Role = "provider"
	RoleSubAdmin    Role = "admin"
	RoleCustomer    Role = "customer"
)

// Roles lists every recognised role, used for seeding and exhaustiveness checks.
var Roles = []Role{RoleSuperAdmin, RoleClientAdmin, RoleProvider, RoleSubAdmin, RoleCustomer}

// Known reports whether r belongs to the closed role set.
func (r Role) Known() bool {
	switch r {
	case RoleSuperAdmin, RoleClientAdmin, RoleProvider, RoleSubAdmin, RoleCustomer:
		return true
	}
	return false
}

// User models an authenticated actor in the system.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Status       string     `json:"status"`
	TenantID     string     `json:"tenant_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}
