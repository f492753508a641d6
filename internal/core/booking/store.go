// Copyright (c) 2026 Reserva. All rights reserved.

package booking

import "context"

// Repository abstracts booking persistence.
//
// ListByUser hydrates the Hotel summary of every booking; the other reads
// and mutations operate on the bare row.
type Repository interface {
	ListByUser(context context.Context, userID int) ([]*Booking, error)
	FindByID(context context.Context, id int) (*Booking, error)
	Create(context context.Context, booking *Booking) error
	Update(context context.Context, booking *Booking) error
	Delete(context context.Context, id int) error
}
