// Copyright (c) 2026 Reserva. All rights reserved.

/*
Package user implements the identity side of the platform: registration,
login, and user administration.

# Architecture

The package follows the standard domain layout:

  - Service: Orchestrates business logic (Register, Login, Update, Delete).
  - Repository: Abstracted persistence interface backed by PostgreSQL.
  - Handler: Thin HTTP delivery layer mounted under /api/users.

Password hashes never leave this package: the entity strips them from JSON
and the public profile projection carries only safe fields.
*/
package user

import (
	"time"

	"github.com/hotelia/reserva/internal/platform/sec"
)

// # Domain Entities

// User represents a registered account.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Gender       string    `json:"gender"`
	Role         sec.Role  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile is the public projection of a [User] returned by the registration
// and login endpoints. It never carries the role or timestamps.
type Profile struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
}

// Profile returns the public projection of the user.
func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Gender:    u.Gender,
	}
}

// # Genders

// Accepted values for the gender attribute.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// # Field Identifiers

// Field names used for validation and JSON mapping in the identity domain.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldGender    = "gender"
)
