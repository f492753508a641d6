// Copyright (c) 2026 Reserva. All rights reserved.

package review

import (
	"context"

	"github.com/hotelia/reserva/pkg/pagination"
)

// Repository abstracts review persistence.
//
// List and ListByHotel hydrate the author summary of every review;
// ListByHotel additionally windows by offset/perPage.
type Repository interface {
	List(context context.Context) ([]*Review, error)
	ListByHotel(context context.Context, hotelID int, page pagination.Params) ([]*Review, error)
	FindByID(context context.Context, id int) (*Review, error)
	Create(context context.Context, review *Review) error
	Update(context context.Context, review *Review) error
	Delete(context context.Context, id int) error
}
