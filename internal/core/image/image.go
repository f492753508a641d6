// Copyright (c) 2026 Reserva. All rights reserved.

// Package image implements hotel photo management.
package image

// Image is a photo attached to a hotel.
type Image struct {
	ID      int    `json:"id"`
	URL     string `json:"url"`
	HotelID int    `json:"hotelId"`
}

// # Field Identifiers

const (
	FieldURL     = "url"
	FieldHotelID = "hotelId"
)
