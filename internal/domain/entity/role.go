// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleCustomer indicates a regular shopping customer.
	RoleCustomer Role = "user"
	// RoleAdmin indicates a staff member managing the catalog and orders.
	RoleAdmin Role = "admin"
	// RoleSupervisor indicates a staff member with admin rights.
	RoleSupervisor Role = "supervisor"
	// RoleSuperAdmin indicates a staff member with every right, including role management.
	RoleSuperAdmin Role = "super_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleSupervisor, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role grants access to admin operations.
func (r Role) IsStaff() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleSuperAdmin:
		return true
	default:
		return false
	}
}
