// Copyright (c) 2026 Reserva. All rights reserved.

package image

import (
	"context"

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

// List returns all images ordered by ID.
func (repo *PostgresRepository) List(context context.Context) ([]*Image, error) {
	rows, err := repo.pool.Query(context, `
		SELECT id, url, hotelid
		FROM images
		ORDER BY id`)
	if err != nil {
		return nil, dberr.Wrap(err, "Image")
	}
	defer rows.Close()

	var images []*Image
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.ID, &img.URL, &img.HotelID); err != nil {
			return nil, dberr.Wrap(err, "Image")
		}
		images = append(images, &img)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Image")
	}

	if images == nil {
		images = make([]*Image, 0)
	}

	return images, nil
}

// Create inserts an image and backfills the generated ID.
func (repo *PostgresRepository) Create(context context.Context, image *Image) error {
	err := repo.pool.QueryRow(context, `
		INSERT INTO images (url, hotelid)
		VALUES ($1, $2)
		RETURNING id`,
		image.URL, image.HotelID,
	).Scan(&image.ID)
	if err != nil {
		return dberr.Wrap(err, "Image")
	}

	return nil
}

// Delete removes an image row by ID.
func (repo *PostgresRepository) Delete(context context.Context, id int) error {
	tag, err := repo.pool.Exec(context, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "Image")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Image")
	}

	return nil
}
