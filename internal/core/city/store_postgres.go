// Copyright (c) 2026 Reserva. All rights reserved.

package city

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hotelia/reserva/internal/core/hotel"
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

// List returns all cities, then groups their hotels onto them in a second
// query to avoid row fan-out.
func (repo *PostgresRepository) List(context context.Context) ([]*City, error) {
	rows, err := repo.pool.Query(context, `
		SELECT id, name, country, countryid
		FROM cities
		ORDER BY id`)
	if err != nil {
		return nil, dberr.Wrap(err, "City")
	}
	defer rows.Close()

	var cities []*City
	for rows.Next() {
		var c City
		if err := rows.Scan(&c.ID, &c.Name, &c.Country, &c.CountryID); err != nil {
			return nil, dberr.Wrap(err, "City")
		}
		c.Hotels = make([]hotel.Hotel, 0)
		cities = append(cities, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "City")
	}

	if err := repo.attachHotels(context, cities); err != nil {
		return nil, err
	}

	if cities == nil {
		cities = make([]*City, 0)
	}

	return cities, nil
}

// FindByID returns one city without hotel hydration, or NotFound.
func (repo *PostgresRepository) FindByID(context context.Context, id int) (*City, error) {
	var c City
	err := repo.pool.QueryRow(context, `
		SELECT id, name, country, countryid
		FROM cities
		WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Country, &c.CountryID)
	if err != nil {
		return nil, dberr.Wrap(err, "City")
	}
	c.Hotels = make([]hotel.Hotel, 0)

	return &c, nil
}

// Create inserts a city and backfills the generated ID.
func (repo *PostgresRepository) Create(context context.Context, city *City) error {
	err := repo.pool.QueryRow(context, `
		INSERT INTO cities (name, country, countryid)
		VALUES ($1, $2, $3)
		RETURNING id`,
		city.Name, city.Country, city.CountryID,
	).Scan(&city.ID)
	if err != nil {
		return dberr.Wrap(err, "City")
	}

	return nil
}

// Update persists all mutable columns of the city row.
func (repo *PostgresRepository) Update(context context.Context, city *City) error {
	tag, err := repo.pool.Exec(context, `
		UPDATE cities
		SET name = $1, country = $2, countryid = $3, updatedat = NOW()
		WHERE id = $4`,
		city.Name, city.Country, city.CountryID, city.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "City")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("City")
	}

	return nil
}

// Delete removes a city row by ID.
func (repo *PostgresRepository) Delete(context context.Context, id int) error {
	tag, err := repo.pool.Exec(context, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "City")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("City")
	}

	return nil
}

// attachHotels loads the hotels for all listed cities in a single query and
// groups them back onto their owners.
func (repo *PostgresRepository) attachHotels(context context.Context, cities []*City) error {
	if len(cities) == 0 {
		return nil
	}

	byID := make(map[int]*City, len(cities))
	ids := make([]int, 0, len(cities))
	for _, c := range cities {
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}

	rows, err := repo.pool.Query(context, `
		SELECT id, name, description, price, address, lat, lon, cityid
		FROM hotels
		WHERE cityid = ANY($1)
		ORDER BY id`, ids)
	if err != nil {
		return dberr.Wrap(err, "Hotel")
	}
	defer rows.Close()

	for rows.Next() {
		var h hotel.Hotel
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Description, &h.Price, &h.Address,
			&h.Lat, &h.Lon, &h.CityID,
		); err != nil {
			return dberr.Wrap(err, "Hotel")
		}
		h.Images = make([]image.Image, 0)
		if owner, ok := byID[h.CityID]; ok {
			owner.Hotels = append(owner.Hotels, h)
		}
	}

	return rows.Err()
}
