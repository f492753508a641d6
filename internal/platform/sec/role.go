// Copyright (c) 2026 Reserva. All rights reserved.

package sec

// # User Roles

// Role represents the authorization level granted to an account.
type Role string

const (
	// Unrestricted access: city/hotel administration, user deletion
	RoleAdmin Role = "ADMIN"

	// Default role for standard registered users
	RoleUser Role = "USER"
)

// IsAdmin reports whether the role carries administrative privileges.
//
// Ownership rules on bookings and reviews deliberately ignore this check;
// admins have no override there.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}
