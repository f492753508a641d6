// Copyright (c) 2026 Reserva. All rights reserved.

package user

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hotelia/reserva/internal/platform/apperr"
	"github.com/hotelia/reserva/internal/platform/dberr"
)

// # User Repository

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the user repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create persists a new user record and hydrates its generated ID.
func (repository *PostgresRepository) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO users (email, passwordhash, firstname, lastname, gender, role, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := repository.pool.QueryRow(context, query,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Gender,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		return dberr.Wrap(fmt.Errorf("user_repo_create_failed: %w", err), "User")
	}

	return nil
}

// FindByEmail retrieves a user record by their unique email address.
func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*User, error) {
	const query = `
		SELECT id, email, passwordhash, firstname, lastname, gender, role, createdat, updatedat
		FROM users
		WHERE email = $1`

	found := &User{}
	err := repository.pool.QueryRow(context, query, email).Scan(
		&found.ID,
		&found.Email,
		&found.PasswordHash,
		&found.FirstName,
		&found.LastName,
		&found.Gender,
		&found.Role,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}

	return found, nil
}

// FindByID retrieves a user record by primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id int) (*User, error) {
	const query = `
		SELECT id, email, passwordhash, firstname, lastname, gender, role, createdat, updatedat
		FROM users
		WHERE id = $1`

	found := &User{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&found.ID,
		&found.Email,
		&found.PasswordHash,
		&found.FirstName,
		&found.LastName,
		&found.Gender,
		&found.Role,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}

	return found, nil
}

// List returns all registered users ordered by ID.
func (repository *PostgresRepository) List(context context.Context) ([]*User, error) {
	const query = `
		SELECT id, email, passwordhash, firstname, lastname, gender, role, createdat, updatedat
		FROM users
		ORDER BY id ASC`

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(
			&u.ID,
			&u.Email,
			&u.PasswordHash,
			&u.FirstName,
			&u.LastName,
			&u.Gender,
			&u.Role,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "User")
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "User")
	}

	return users, nil
}

// Update persists the mutable profile fields of an existing user.
func (repository *PostgresRepository) Update(context context.Context, user *User) error {
	const query = `
		UPDATE users
		SET email = $1, firstname = $2, lastname = $3, gender = $4, updatedat = $5
		WHERE id = $6`

	user.UpdatedAt = time.Now()

	tag, err := repository.pool.Exec(context, query,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Gender,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "User")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

// Delete removes a user by primary key. Returns NotFound when no row matched.
func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	const query = `DELETE FROM users WHERE id = $1`

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "User")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}
