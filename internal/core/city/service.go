// Copyright (c) 2026 Reserva. All rights reserved.

package city

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hotelia/reserva/internal/core/hotel"
)

// Service orchestrates city catalogue logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns all cities with their hotels embedded.
func (service *Service) List(context context.Context) ([]*City, error) {
	return service.repo.List(context)
}

// CreateInput holds the fields required to register a new city.
type CreateInput struct {
	Name      string
	Country   string
	CountryID string
}

// Create persists a new city.
func (service *Service) Create(context context.Context, input CreateInput) (*City, error) {
	newCity := &City{
		Name:      input.Name,
		Country:   input.Country,
		CountryID: input.CountryID,
		Hotels:    make([]hotel.Hotel, 0),
	}

	if err := service.repo.Create(context, newCity); err != nil {
		return nil, fmt.Errorf("city_service_create_failed: %w", err)
	}

	service.logger.Info("city_created", slog.Int("city_id", newCity.ID))

	return newCity, nil
}

// UpdateInput defines the mutable subset of city fields.
type UpdateInput struct {
	Name      *string
	Country   *string
	CountryID *string
}

// Update applies a partial set of changes to a city.
func (service *Service) Update(context context.Context, cityID int, input UpdateInput) (*City, error) {
	existing, err := service.repo.FindByID(context, cityID)
	if err != nil {
		return nil, err
	}

	// Apply delta updates
	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Country != nil {
		existing.Country = *input.Country
	}
	if input.CountryID != nil {
		existing.CountryID = *input.CountryID
	}

	if err := service.repo.Update(context, existing); err != nil {
		return nil, fmt.Errorf("city_service_update_failed: %w", err)
	}

	return existing, nil
}

// Delete removes a city by ID. Deleting an absent city returns NotFound.
func (service *Service) Delete(context context.Context, cityID int) error {
	return service.repo.Delete(context, cityID)
}
