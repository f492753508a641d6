// Copyright (c) 2026 Reserva. All rights reserved.

package hotel

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hotelia/reserva/internal/core/image"
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

// List returns hotels matching the filter with the review average aggregated
// in the query, then hydrates images in one batched second query.
func (repo *PostgresRepository) List(context context.Context, filter ListFilter) ([]*Hotel, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.Name != "" {
		args = append(args, filter.Name)
		conditions = append(conditions, fmt.Sprintf("h.name ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.CityID != 0 {
		args = append(args, filter.CityID)
		conditions = append(conditions, fmt.Sprintf("h.cityid = $%d", len(args)))
	}

	query := `
		SELECT h.id, h.name, h.description, h.price, h.address, h.lat, h.lon, h.cityid,
		       COALESCE(AVG(r.rating), 0) AS rating
		FROM hotels h
		LEFT JOIN reviews r ON r.hotelid = h.id`

	if len(conditions) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}

	query += `
		GROUP BY h.id
		ORDER BY h.id`

	rows, err := repo.pool.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Hotel")
	}
	defer rows.Close()

	var hotels []*Hotel
	for rows.Next() {
		var h Hotel
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Description, &h.Price, &h.Address,
			&h.Lat, &h.Lon, &h.CityID, &h.Rating,
		); err != nil {
			return nil, dberr.Wrap(err, "Hotel")
		}
		h.Images = make([]image.Image, 0)
		hotels = append(hotels, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Hotel")
	}

	if err := repo.attachImages(context, hotels); err != nil {
		return nil, err
	}

	if hotels == nil {
		hotels = make([]*Hotel, 0)
	}

	return hotels, nil
}

// FindByID returns one hotel with its computed rating and images, or NotFound.
func (repo *PostgresRepository) FindByID(context context.Context, id int) (*Hotel, error) {
	query := `
		SELECT h.id, h.name, h.description, h.price, h.address, h.lat, h.lon, h.cityid,
		       COALESCE(AVG(r.rating), 0) AS rating
		FROM hotels h
		LEFT JOIN reviews r ON r.hotelid = h.id
		WHERE h.id = $1
		GROUP BY h.id`

	var h Hotel
	err := repo.pool.QueryRow(context, query, id).Scan(
		&h.ID, &h.Name, &h.Description, &h.Price, &h.Address,
		&h.Lat, &h.Lon, &h.CityID, &h.Rating,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Hotel")
	}

	h.Images = make([]image.Image, 0)
	if err := repo.attachImages(context, []*Hotel{&h}); err != nil {
		return nil, err
	}

	return &h, nil
}

// Create inserts a hotel and backfills the generated ID.
func (repo *PostgresRepository) Create(context context.Context, hotel *Hotel) error {
	query := `
		INSERT INTO hotels (name, description, price, address, lat, lon, cityid)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := repo.pool.QueryRow(context, query,
		hotel.Name, hotel.Description, hotel.Price, hotel.Address,
		hotel.Lat, hotel.Lon, hotel.CityID,
	).Scan(&hotel.ID)
	if err != nil {
		return dberr.Wrap(err, "Hotel")
	}

	return nil
}

// Update persists all mutable columns of the hotel row.
func (repo *PostgresRepository) Update(context context.Context, hotel *Hotel) error {
	query := `
		UPDATE hotels
		SET name = $1, description = $2, price = $3, address = $4,
		    lat = $5, lon = $6, cityid = $7, updatedat = NOW()
		WHERE id = $8`

	tag, err := repo.pool.Exec(context, query,
		hotel.Name, hotel.Description, hotel.Price, hotel.Address,
		hotel.Lat, hotel.Lon, hotel.CityID, hotel.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "Hotel")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Hotel")
	}

	return nil
}

// Delete removes a hotel row by ID.
func (repo *PostgresRepository) Delete(context context.Context, id int) error {
	tag, err := repo.pool.Exec(context, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "Hotel")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Hotel")
	}

	return nil
}

// attachImages loads the images for all listed hotels in a single query and
// groups them back onto their owners.
func (repo *PostgresRepository) attachImages(context context.Context, hotels []*Hotel) error {
	if len(hotels) == 0 {
		return nil
	}

	byID := make(map[int]*Hotel, len(hotels))
	ids := make([]int, 0, len(hotels))
	for _, h := range hotels {
		byID[h.ID] = h
		ids = append(ids, h.ID)
	}

	query := `
		SELECT id, url, hotelid
		FROM images
		WHERE hotelid = ANY($1)
		ORDER BY id`

	rows, err := repo.pool.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "Image")
	}
	defer rows.Close()

	for rows.Next() {
		var img image.Image
		if err := rows.Scan(&img.ID, &img.URL, &img.HotelID); err != nil {
			return dberr.Wrap(err, "Image")
		}
		if owner, ok := byID[img.HotelID]; ok {
			owner.Images = append(owner.Images, img)
		}
	}

	return rows.Err()
}
