// Copyright (c) 2026 Reserva. All rights reserved.

package city

import "context"

// Repository abstracts city persistence.
//
// List hydrates the Hotels of every city; mutation methods operate on the
// bare row.
type Repository interface {
	List(context context.Context) ([]*City, error)
	FindByID(context context.Context, id int) (*City, error)
	Create(context context.Context, city *City) error
	Update(context context.Context, city *City) error
	Delete(context context.Context, id int) error
}
