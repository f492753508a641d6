// Copyright (c) 2026 Reserva. All rights reserved.

package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hotelia/reserva/internal/platform/apperr"
	"github.com/hotelia/reserva/pkg/pagination"
)

// Service orchestrates review logic and enforces ownership.
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

// List returns all reviews with author summaries embedded.
func (service *Service) List(context context.Context) ([]*Review, error) {
	return service.repo.List(context)
}

// ListByHotel returns a paginated window of one hotel's reviews.
func (service *Service) ListByHotel(context context.Context, hotelID int, page pagination.Params) ([]*Review, error) {
	return service.repo.ListByHotel(context, hotelID, page)
}

// Create persists a new review authored by userID.
func (service *Service) Create(context context.Context, userID, hotelID, rating int, comment string) (*Review, error) {
	newReview := &Review{
		UserID:  userID,
		HotelID: hotelID,
		Rating:  rating,
		Comment: comment,
	}

	if err := service.repo.Create(context, newReview); err != nil {
		return nil, fmt.Errorf("review_service_create_failed: %w", err)
	}

	service.logger.Info("review_created",
		slog.Int("review_id", newReview.ID),
		slog.Int("user_id", userID),
		slog.Int("hotel_id", hotelID),
	)

	return newReview, nil
}

// UpdateInput defines the mutable subset of review fields. Only the rating
// and comment can change; the author and hotel bindings are immutable.
type UpdateInput struct {
	Rating  *int
	Comment *string
}

// Update applies a partial change to a review authored by userID.
//
// A review authored by someone else returns an explicit 403.
func (service *Service) Update(context context.Context, reviewID, userID int, input UpdateInput) (*Review, error) {
	existing, err := service.repo.FindByID(context, reviewID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, apperr.Forbidden("Forbidden: You can only update your own reviews")
	}

	if input.Rating != nil {
		existing.Rating = *input.Rating
	}
	if input.Comment != nil {
		existing.Comment = *input.Comment
	}

	if err := service.repo.Update(context, existing); err != nil {
		return nil, fmt.Errorf("review_service_update_failed: %w", err)
	}

	return existing, nil
}

// Delete removes a review authored by userID.
func (service *Service) Delete(context context.Context, reviewID, userID int) error {
	existing, err := service.repo.FindByID(context, reviewID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return apperr.Forbidden("Forbidden: You can only delete your own reviews")
	}

	if err := service.repo.Delete(context, reviewID); err != nil {
		return fmt.Errorf("review_service_delete_failed: %w", err)
	}

	service.logger.Info("review_deleted",
		slog.Int("review_id", reviewID),
		slog.Int("user_id", userID),
	)

	return nil
}
