// Copyright (c) 2026 Reserva. All rights reserved.

package booking

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hotelia/reserva/internal/platform/apperr"
	"github.com/hotelia/reserva/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on a pgx connection pool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Compile-time interface check
var _ Repository = (*PostgresRepository)(nil)

// # Queries

// ListByUser returns the user's bookings joined with their hotel summaries.
func (repo *PostgresRepository) ListByUser(context context.Context, userID int) ([]*Booking, error) {
	rows, err := repo.pool.Query(context, `
		SELECT b.id, b.userid, b.hotelid, b.checkin, b.checkout,
		       h.id, h.name, h.address, h.price
		FROM bookings b
		JOIN hotels h ON h.id = b.hotelid
		WHERE b.userid = $1
		ORDER BY b.id`, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "Booking")
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var (
			b        Booking
			summary  HotelSummary
			checkIn  time.Time
			checkOut time.Time
		)
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.HotelID, &checkIn, &checkOut,
			&summary.ID, &summary.Name, &summary.Address, &summary.Price,
		); err != nil {
			return nil, dberr.Wrap(err, "Booking")
		}
		b.CheckIn = NewDateOnly(checkIn)
		b.CheckOut = NewDateOnly(checkOut)
		b.Hotel = &summary
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Booking")
	}

	if bookings == nil {
		bookings = make([]*Booking, 0)
	}

	return bookings, nil
}

// FindByID returns one booking without hotel hydration, or NotFound.
func (repo *PostgresRepository) FindByID(context context.Context, id int) (*Booking, error) {
	var (
		b        Booking
		checkIn  time.Time
		checkOut time.Time
	)
	err := repo.pool.QueryRow(context, `
		SELECT id, userid, hotelid, checkin, checkout
		FROM bookings
		WHERE id = $1`, id,
	).Scan(&b.ID, &b.UserID, &b.HotelID, &checkIn, &checkOut)
	if err != nil {
		return nil, dberr.Wrap(err, "Booking")
	}
	b.CheckIn = NewDateOnly(checkIn)
	b.CheckOut = NewDateOnly(checkOut)

	return &b, nil
}

// Create inserts a booking and backfills the generated ID.
func (repo *PostgresRepository) Create(context context.Context, booking *Booking) error {
	err := repo.pool.QueryRow(context, `
		INSERT INTO bookings (userid, hotelid, checkin, checkout)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		booking.UserID, booking.HotelID, booking.CheckIn.Time, booking.CheckOut.Time,
	).Scan(&booking.ID)
	if err != nil {
		return dberr.Wrap(err, "Booking")
	}

	return nil
}

// Update persists the stay dates of the booking row.
func (repo *PostgresRepository) Update(context context.Context, booking *Booking) error {
	tag, err := repo.pool.Exec(context, `
		UPDATE bookings
		SET checkin = $1, checkout = $2, updatedat = NOW()
		WHERE id = $3`,
		booking.CheckIn.Time, booking.CheckOut.Time, booking.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "Booking")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Booking")
	}

	return nil
}

// Delete removes a booking row by ID.
func (repo *PostgresRepository) Delete(context context.Context, id int) error {
	tag, err := repo.pool.Exec(context, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "Booking")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Booking")
	}

	return nil
}
