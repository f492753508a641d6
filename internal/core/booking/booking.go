// Copyright (c) 2026 Reserva. All rights reserved.

/*
Package booking implements hotel reservations.

# Ownership

Bookings are strictly private: every read and mutation is scoped to the
authenticated user, and a booking belonging to someone else is reported as
absent (404) rather than forbidden, so the API never confirms that a given
booking ID exists. Admins get no override here.
*/
package booking

import "time"

// dateLayout is the wire format for booking dates.
const dateLayout = "2006-01-02"

// DateOnly is a calendar date serialized as "YYYY-MM-DD".
type DateOnly struct {
	time.Time
}

// NewDateOnly truncates a timestamp to its calendar date.
func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{Time: t.Truncate(24 * time.Hour)}
}

// MarshalJSON renders the date in "YYYY-MM-DD" form.
func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD" and RFC 3339 timestamps.
func (d *DateOnly) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if len(raw) >= 2 && raw[0] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	if parsed, err := time.Parse(dateLayout, raw); err == nil {
		d.Time = parsed
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

// Booking is a reservation of one hotel by one user for a date range.
type Booking struct {
	ID       int      `json:"id"`
	UserID   int      `json:"userId"`
	HotelID  int      `json:"hotelId"`
	CheckIn  DateOnly `json:"checkIn"`
	CheckOut DateOnly `json:"checkOut"`

	// Hotel carries a denormalized summary of the booked hotel, populated
	// on list reads.
	Hotel *HotelSummary `json:"hotel,omitempty"`
}

// HotelSummary is the subset of hotel fields embedded in booking listings.
type HotelSummary struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Price   float64 `json:"price"`
}

// # Field Identifiers

const (
	FieldHotelID  = "hotelId"
	FieldCheckIn  = "checkIn"
	FieldCheckOut = "checkOut"
)
