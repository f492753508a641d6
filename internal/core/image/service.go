// Copyright (c) 2026 Reserva. All rights reserved.

package image

import (
	"context"
	"fmt"
	"log/slog"
)

// Service orchestrates hotel image logic.
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

// List returns all images.
func (service *Service) List(context context.Context) ([]*Image, error) {
	return service.repo.List(context)
}

// Create attaches a new image to a hotel. A dangling hotelId surfaces as a
// foreign-key violation and maps to a 400.
func (service *Service) Create(context context.Context, url string, hotelID int) (*Image, error) {
	newImage := &Image{
		URL:     url,
		HotelID: hotelID,
	}

	if err := service.repo.Create(context, newImage); err != nil {
		return nil, fmt.Errorf("image_service_create_failed: %w", err)
	}

	service.logger.Info("image_created",
		slog.Int("image_id", newImage.ID),
		slog.Int("hotel_id", hotelID),
	)

	return newImage, nil
}

// Delete removes an image by ID. Deleting an absent image returns NotFound.
func (service *Service) Delete(context context.Context, imageID int) error {
	return service.repo.Delete(context, imageID)
}
