// Copyright (c) 2026 Reserva. All rights reserved.

/*
Package hotel implements the hotel catalogue with its computed rating.

# Computed rating

A hotel's rating is the arithmetic mean of its review ratings, recomputed on
every read as a projection in the query itself. It is never persisted, so
there is no incremental-update or invalidation logic anywhere.
*/
package hotel

import "github.com/hotelia/reserva/internal/core/image"

// Hotel is a bookable property belonging to exactly one city.
type Hotel struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Address     string  `json:"address"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	CityID      int     `json:"cityId"`

	// Images contains the attached photos, populated on reads. Always
	// serialized, empty slice when the hotel has no photos.
	Images []image.Image `json:"images"`

	// Rating is the review average, computed at read time. 0 with no reviews.
	Rating float64 `json:"rating"`
}

// ListFilter narrows the public hotel listing.
type ListFilter struct {
	// Name is a case-insensitive substring match. Empty means no filter.
	Name string
	// CityID restricts to one city. 0 means no filter.
	CityID int
}

// # Field Identifiers

const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldAddress     = "address"
	FieldLat         = "lat"
	FieldLon         = "lon"
	FieldCityID      = "cityId"
)
