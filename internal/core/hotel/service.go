// Copyright (c) 2026 Reserva. All rights reserved.

package hotel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hotelia/reserva/internal/core/image"
)

// Service orchestrates hotel catalogue logic.
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

// List returns hotels matching the filter, each with images and computed rating.
func (service *Service) List(context context.Context, filter ListFilter) ([]*Hotel, error) {
	return service.repo.List(context, filter)
}

// Get returns one hotel with images and computed rating, or NotFound.
func (service *Service) Get(context context.Context, id int) (*Hotel, error) {
	return service.repo.FindByID(context, id)
}

// CreateInput holds the fields required to register a new hotel.
type CreateInput struct {
	Name        string
	Description string
	Price       float64
	Address     string
	Lat         float64
	Lon         float64
	CityID      int
}

// Create persists a new hotel.
func (service *Service) Create(context context.Context, input CreateInput) (*Hotel, error) {
	newHotel := &Hotel{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Address:     input.Address,
		Lat:         input.Lat,
		Lon:         input.Lon,
		CityID:      input.CityID,
		Images:      make([]image.Image, 0),
	}

	if err := service.repo.Create(context, newHotel); err != nil {
		return nil, fmt.Errorf("hotel_service_create_failed: %w", err)
	}

	service.logger.Info("hotel_created", slog.Int("hotel_id", newHotel.ID))

	return newHotel, nil
}

// UpdateInput defines the mutable subset of hotel fields.
type UpdateInput struct {
	Name        *string
	Description *string
	Price       *float64
	Address     *string
	Lat         *float64
	Lon         *float64
	CityID      *int
}

// Update applies a partial set of changes to a hotel.
func (service *Service) Update(context context.Context, hotelID int, input UpdateInput) (*Hotel, error) {
	existing, err := service.repo.FindByID(context, hotelID)
	if err != nil {
		return nil, err
	}

	// Apply delta updates
	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.Price != nil {
		existing.Price = *input.Price
	}
	if input.Address != nil {
		existing.Address = *input.Address
	}
	if input.Lat != nil {
		existing.Lat = *input.Lat
	}
	if input.Lon != nil {
		existing.Lon = *input.Lon
	}
	if input.CityID != nil {
		existing.CityID = *input.CityID
	}

	if err := service.repo.Update(context, existing); err != nil {
		return nil, fmt.Errorf("hotel_service_update_failed: %w", err)
	}

	return existing, nil
}

// Delete removes a hotel by ID. Deleting an absent hotel returns NotFound.
func (service *Service) Delete(context context.Context, hotelID int) error {
	return service.repo.Delete(context, hotelID)
}
