// Copyright (c) 2026 Reserva. All rights reserved.

package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hotelia/reserva/internal/platform/apperr"
)

// Service orchestrates reservation logic and enforces ownership.
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

// ListForUser returns the caller's bookings with hotel summaries embedded.
func (service *Service) ListForUser(context context.Context, userID int) ([]*Booking, error) {
	return service.repo.ListByUser(context, userID)
}

// Create persists a new booking owned by userID.
func (service *Service) Create(context context.Context, userID, hotelID int, checkIn, checkOut time.Time) (*Booking, error) {
	newBooking := &Booking{
		UserID:   userID,
		HotelID:  hotelID,
		CheckIn:  NewDateOnly(checkIn),
		CheckOut: NewDateOnly(checkOut),
	}

	if err := service.repo.Create(context, newBooking); err != nil {
		return nil, fmt.Errorf("booking_service_create_failed: %w", err)
	}

	service.logger.Info("booking_created",
		slog.Int("booking_id", newBooking.ID),
		slog.Int("user_id", userID),
		slog.Int("hotel_id", hotelID),
	)

	return newBooking, nil
}

// UpdateInput defines the mutable subset of booking fields. Only the stay
// dates can move; the user and hotel bindings are immutable.
type UpdateInput struct {
	CheckIn  *time.Time
	CheckOut *time.Time
}

// Update applies a partial date change to a booking owned by userID.
func (service *Service) Update(context context.Context, bookingID, userID int, input UpdateInput) (*Booking, error) {
	existing, err := service.ownedByUser(context, bookingID, userID)
	if err != nil {
		return nil, err
	}

	if input.CheckIn != nil {
		existing.CheckIn = NewDateOnly(*input.CheckIn)
	}
	if input.CheckOut != nil {
		existing.CheckOut = NewDateOnly(*input.CheckOut)
	}

	if err := service.repo.Update(context, existing); err != nil {
		return nil, fmt.Errorf("booking_service_update_failed: %w", err)
	}

	return existing, nil
}

// Delete removes a booking owned by userID.
func (service *Service) Delete(context context.Context, bookingID, userID int) error {
	if _, err := service.ownedByUser(context, bookingID, userID); err != nil {
		return err
	}

	if err := service.repo.Delete(context, bookingID); err != nil {
		return fmt.Errorf("booking_service_delete_failed: %w", err)
	}

	service.logger.Info("booking_deleted",
		slog.Int("booking_id", bookingID),
		slog.Int("user_id", userID),
	)

	return nil
}

// ownedByUser fetches a booking and checks ownership. A booking owned by
// another user is reported as absent, never as forbidden.
func (service *Service) ownedByUser(context context.Context, bookingID, userID int) (*Booking, error) {
	existing, err := service.repo.FindByID(context, bookingID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, apperr.NotFound("Booking")
	}
	return existing, nil
}
