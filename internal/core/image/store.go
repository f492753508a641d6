// Copyright (c) 2026 Reserva. All rights reserved.

package image

import "context"

// Repository abstracts image persistence.
type Repository interface {
	List(context context.Context) ([]*Image, error)
	Create(context context.Context, image *Image) error
	Delete(context context.Context, id int) error
}
