// Copyright (c) 2026 Reserva. All rights reserved.

package review

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hotelia/reserva/internal/platform/apperr"
	"github.com/hotelia/reserva/internal/platform/dberr"
	"github.com/hotelia/reserva/pkg/pagination"
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

// List returns all reviews joined with their author summaries.
func (repo *PostgresRepository) List(context context.Context) ([]*Review, error) {
	rows, err := repo.pool.Query(context, `
		SELECT r.id, r.userid, r.hotelid, r.rating, r.comment,
		       u.id, u.firstname, u.lastname
		FROM reviews r
		JOIN users u ON u.id = r.userid
		ORDER BY r.id`)
	if err != nil {
		return nil, dberr.Wrap(err, "Review")
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		var (
			r      Review
			author UserSummary
		)
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.HotelID, &r.Rating, &r.Comment,
			&author.ID, &author.FirstName, &author.LastName,
		); err != nil {
			return nil, dberr.Wrap(err, "Review")
		}
		r.User = &author
		reviews = append(reviews, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Review")
	}

	if reviews == nil {
		reviews = make([]*Review, 0)
	}

	return reviews, nil
}

// ListByHotel returns a paginated window of one hotel's reviews, each joined
// with its author summary.
func (repo *PostgresRepository) ListByHotel(context context.Context, hotelID int, page pagination.Params) ([]*Review, error) {
	rows, err := repo.pool.Query(context, `
		SELECT r.id, r.userid, r.hotelid, r.rating, r.comment,
		       u.id, u.firstname, u.lastname
		FROM reviews r
		JOIN users u ON u.id = r.userid
		WHERE r.hotelid = $1
		ORDER BY r.id
		OFFSET $2 LIMIT $3`,
		hotelID, page.Offset, page.PerPage)
	if err != nil {
		return nil, dberr.Wrap(err, "Review")
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		var (
			r      Review
			author UserSummary
		)
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.HotelID, &r.Rating, &r.Comment,
			&author.ID, &author.FirstName, &author.LastName,
		); err != nil {
			return nil, dberr.Wrap(err, "Review")
		}
		r.User = &author
		reviews = append(reviews, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Review")
	}

	if reviews == nil {
		reviews = make([]*Review, 0)
	}

	return reviews, nil
}

// FindByID returns one review without author hydration, or NotFound.
func (repo *PostgresRepository) FindByID(context context.Context, id int) (*Review, error) {
	var r Review
	err := repo.pool.QueryRow(context, `
		SELECT id, userid, hotelid, rating, comment
		FROM reviews
		WHERE id = $1`, id,
	).Scan(&r.ID, &r.UserID, &r.HotelID, &r.Rating, &r.Comment)
	if err != nil {
		return nil, dberr.Wrap(err, "Review")
	}

	return &r, nil
}

// Create inserts a review and backfills the generated ID.
func (repo *PostgresRepository) Create(context context.Context, review *Review) error {
	err := repo.pool.QueryRow(context, `
		INSERT INTO reviews (userid, hotelid, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		review.UserID, review.HotelID, review.Rating, review.Comment,
	).Scan(&review.ID)
	if err != nil {
		return dberr.Wrap(err, "Review")
	}

	return nil
}

// Update persists the rating and comment of the review row.
func (repo *PostgresRepository) Update(context context.Context, review *Review) error {
	tag, err := repo.pool.Exec(context, `
		UPDATE reviews
		SET rating = $1, comment = $2, updatedat = NOW()
		WHERE id = $3`,
		review.Rating, review.Comment, review.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "Review")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Review")
	}

	return nil
}

// Delete removes a review row by ID.
func (repo *PostgresRepository) Delete(context context.Context, id int) error {
	tag, err := repo.pool.Exec(context, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "Review")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Review")
	}

	return nil
}
