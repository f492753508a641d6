// Copyright (c) 2026 Reserva. All rights reserved.

package user

import "context"

// Repository abstracts user persistence.
//
// # Error contract
//
// Lookup methods return an [apperr.AppError] with status 404 when no row
// matches; mutation methods do the same when the target row is gone, so a
// repeated delete surfaces as NotFound rather than a silent success.
type Repository interface {
	Create(context context.Context, user *User) error
	FindByEmail(context context.Context, email string) (*User, error)
	FindByID(context context.Context, id int) (*User, error)
	List(context context.Context) ([]*User, error)
	Update(context context.Context, user *User) error
	Delete(context context.Context, id int) error
}
