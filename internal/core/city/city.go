// Copyright (c) 2026 Reserva. All rights reserved.

/*
Package city implements the city catalogue.

Cities are the top of the resource hierarchy: each hotel belongs to exactly
one city, and the public listing embeds the hotels of every city. Creation
requires authentication; updates and deletes are admin-gated.
*/
package city

import "github.com/hotelia/reserva/internal/core/hotel"

// City groups hotels by location.
type City struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	CountryID string `json:"countryId"` // 2-letter code, e.g. "MX", "US"

	// Hotels contains the child hotels, populated on reads.
	Hotels []hotel.Hotel `json:"hotels"`
}

// # Field Identifiers

const (
	FieldName      = "name"
	FieldCountry   = "country"
	FieldCountryID = "countryId"
)
