// Copyright (c) 2026 Reserva. All rights reserved.

package hotel

import "context"

// Repository abstracts hotel persistence.
//
// List and FindByID hydrate Images and the computed Rating; mutation methods
// operate on the bare row.
type Repository interface {
	List(context context.Context, filter ListFilter) ([]*Hotel, error)
	FindByID(context context.Context, id int) (*Hotel, error)
	Create(context context.Context, hotel *Hotel) error
	Update(context context.Context, hotel *Hotel) error
	Delete(context context.Context, id int) error
}
