// Copyright (c) 2026 Reserva. All rights reserved.

/*
Package review implements hotel reviews.

# Ownership

Reviews are publicly readable, but a user can only modify or delete their
own. Unlike bookings, a mismatch here is reported as an explicit 403 because
the review's existence is already public. Admins get no override.
*/
package review

// Review is a rating and comment left by one user on one hotel.
type Review struct {
	ID      int    `json:"id"`
	UserID  int    `json:"userId"`
	HotelID int    `json:"hotelId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`

	// User carries a denormalized summary of the author, populated on the
	// global listing only.
	User *UserSummary `json:"user,omitempty"`
}

// UserSummary is the subset of author fields embedded in review listings.
type UserSummary struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// # Field Identifiers

const (
	FieldHotelID = "hotelId"
	FieldRating  = "rating"
	FieldComment = "comment"
	FieldOffset  = "offset"
	FieldPerPage = "perPage"
)
