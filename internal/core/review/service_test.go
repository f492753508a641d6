// Copyright (c) 2026 Reserva. All rights reserved.

package review_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelia/reserva/internal/core/review"
	"github.com/hotelia/reserva/internal/platform/apperr"
	"github.com/hotelia/reserva/pkg/pagination"
)

// # Test Doubles

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	byID   map[int]*review.Review
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[int]*review.Review), nextID: 1}
}

func (f *fakeRepository) List(_ context.Context) ([]*review.Review, error) {
	result := make([]*review.Review, 0)
	for i := 1; i < f.nextID; i++ {
		if r, ok := f.byID[i]; ok {
			clone := *r
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (f *fakeRepository) ListByHotel(_ context.Context, hotelID int, page pagination.Params) ([]*review.Review, error) {
	matching := make([]*review.Review, 0)
	for i := 1; i < f.nextID; i++ {
		if r, ok := f.byID[i]; ok && r.HotelID == hotelID {
			clone := *r
			matching = append(matching, &clone)
		}
	}

	if page.Offset >= len(matching) {
		return []*review.Review{}, nil
	}
	end := page.Offset + page.PerPage
	if end > len(matching) {
		end = len(matching)
	}
	return matching[page.Offset:end], nil
}

func (f *fakeRepository) FindByID(_ context.Context, id int) (*review.Review, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, apperr.NotFound("Review")
	}
	clone := *r
	return &clone, nil
}

func (f *fakeRepository) Create(_ context.Context, r *review.Review) error {
	r.ID = f.nextID
	f.nextID++
	stored := *r
	f.byID[r.ID] = &stored
	return nil
}

func (f *fakeRepository) Update(_ context.Context, r *review.Review) error {
	if _, ok := f.byID[r.ID]; !ok {
		return apperr.NotFound("Review")
	}
	stored := *r
	f.byID[r.ID] = &stored
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id int) error {
	if _, ok := f.byID[id]; !ok {
		return apperr.NotFound("Review")
	}
	delete(f.byID, id)
	return nil
}

func newTestService(repo *fakeRepository) *review.Service {
	return review.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// # Ownership

/*
TestReview_OwnershipForbidden pins the contrast with bookings: a review's
existence is public, so touching someone else's review is an explicit 403
with the canonical message, while a truly absent review stays a 404.
*/
func TestReview_OwnershipForbidden(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)
	ctx := context.Background()

	created, err := service.Create(ctx, 1, 10, 4, "Great location and staff")
	require.NoError(t, err)

	newRating := 1

	t.Run("other_user_update", func(t *testing.T) {
		_, err := service.Update(ctx, created.ID, 2, review.UpdateInput{Rating: &newRating})

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 403, ae.HTTPStatus)
		assert.Equal(t, "Forbidden: You can only update your own reviews", ae.Message)
	})

	t.Run("other_user_delete", func(t *testing.T) {
		err := service.Delete(ctx, created.ID, 2)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 403, ae.HTTPStatus)
		assert.Equal(t, "Forbidden: You can only delete your own reviews", ae.Message)
	})

	t.Run("missing_review", func(t *testing.T) {
		_, err := service.Update(ctx, 999, 1, review.UpdateInput{Rating: &newRating})

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 404, ae.HTTPStatus)
		assert.Equal(t, "Review not found", ae.Message)
	})

	// The review must be untouched after the rejected attempts.
	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.Rating)
}

/*
TestReview_OwnerUpdate verifies the mutable subset: rating and comment move,
the author and hotel bindings never do, even if a client tries.
*/
func TestReview_OwnerUpdate(t *testing.T) {
	service := newTestService(newFakeRepository())
	ctx := context.Background()

	created, err := service.Create(ctx, 1, 10, 4, "Great location and staff")
	require.NoError(t, err)

	newRating := 2
	newComment := "Quality dropped on the second stay"
	updated, err := service.Update(ctx, created.ID, 1, review.UpdateInput{
		Rating:  &newRating,
		Comment: &newComment,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, newComment, updated.Comment)
	assert.Equal(t, 1, updated.UserID)
	assert.Equal(t, 10, updated.HotelID)
}

/*
TestReview_OwnerDelete verifies the happy deletion path and the 404 on a
repeated attempt.
*/
func TestReview_OwnerDelete(t *testing.T) {
	service := newTestService(newFakeRepository())
	ctx := context.Background()

	created, err := service.Create(ctx, 1, 10, 5, "Nothing to complain about")
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID, 1))

	err = service.Delete(ctx, created.ID, 1)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
}

// # Listing

/*
TestReview_ListByHotel_Pagination verifies the offset/perPage windowing over
a single hotel's reviews.
*/
func TestReview_ListByHotel_Pagination(t *testing.T) {
	service := newTestService(newFakeRepository())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := service.Create(ctx, 1, 10, 3, "Perfectly average stay")
		require.NoError(t, err)
	}
	_, err := service.Create(ctx, 1, 11, 5, "Different hotel entirely")
	require.NoError(t, err)

	t.Run("first_page", func(t *testing.T) {
		page, err := service.ListByHotel(ctx, 10, pagination.Params{Offset: 0, PerPage: 2})
		require.NoError(t, err)
		assert.Len(t, page, 2)
	})

	t.Run("tail_window", func(t *testing.T) {
		page, err := service.ListByHotel(ctx, 10, pagination.Params{Offset: 4, PerPage: 10})
		require.NoError(t, err)
		assert.Len(t, page, 1)
	})

	t.Run("offset_past_end", func(t *testing.T) {
		page, err := service.ListByHotel(ctx, 10, pagination.Params{Offset: 50, PerPage: 10})
		require.NoError(t, err)
		assert.Empty(t, page)
	})
}
