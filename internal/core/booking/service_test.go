// Copyright (c) 2026 Reserva. All rights reserved.

package booking_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelia/reserva/internal/core/booking"
	"github.com/hotelia/reserva/internal/platform/apperr"
)

// # Test Doubles

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	byID   map[int]*booking.Booking
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[int]*booking.Booking), nextID: 1}
}

func (f *fakeRepository) ListByUser(_ context.Context, userID int) ([]*booking.Booking, error) {
	result := make([]*booking.Booking, 0)
	for i := 1; i < f.nextID; i++ {
		if b, ok := f.byID[i]; ok && b.UserID == userID {
			clone := *b
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id int) (*booking.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, apperr.NotFound("Booking")
	}
	clone := *b
	return &clone, nil
}

func (f *fakeRepository) Create(_ context.Context, b *booking.Booking) error {
	b.ID = f.nextID
	f.nextID++
	stored := *b
	f.byID[b.ID] = &stored
	return nil
}

func (f *fakeRepository) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := f.byID[b.ID]; !ok {
		return apperr.NotFound("Booking")
	}
	stored := *b
	f.byID[b.ID] = &stored
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id int) error {
	if _, ok := f.byID[id]; !ok {
		return apperr.NotFound("Booking")
	}
	delete(f.byID, id)
	return nil
}

func newTestService(repo *fakeRepository) *booking.Service {
	return booking.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

// # Ownership

/*
TestBooking_OwnershipMasking pins the privacy rule: touching someone else's
booking reports "Booking not found", exactly like a booking that does not
exist, and admins get no special treatment.
*/
func TestBooking_OwnershipMasking(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)
	ctx := context.Background()

	owned, err := service.Create(ctx, 1, 10, date("2026-09-01"), date("2026-09-05"))
	require.NoError(t, err)

	newCheckIn := date("2026-09-02")

	t.Run("other_user_update", func(t *testing.T) {
		_, err := service.Update(ctx, owned.ID, 2, booking.UpdateInput{CheckIn: &newCheckIn})

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 404, ae.HTTPStatus)
		assert.Equal(t, "Booking not found", ae.Message)
	})

	t.Run("other_user_delete", func(t *testing.T) {
		err := service.Delete(ctx, owned.ID, 2)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 404, ae.HTTPStatus)
	})

	t.Run("missing_booking_same_shape", func(t *testing.T) {
		err := service.Delete(ctx, 999, 1)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 404, ae.HTTPStatus)
		assert.Equal(t, "Booking not found", ae.Message)
	})

	// The booking itself must be untouched.
	stored, err := repo.FindByID(ctx, owned.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.UserID)
	assert.Equal(t, "2026-09-01", stored.CheckIn.Format("2006-01-02"))
}

/*
TestBooking_OwnerUpdate verifies that the owner can move the stay dates and
that the user and hotel bindings never change.
*/
func TestBooking_OwnerUpdate(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)
	ctx := context.Background()

	created, err := service.Create(ctx, 1, 10, date("2026-09-01"), date("2026-09-05"))
	require.NoError(t, err)

	newCheckOut := date("2026-09-07")
	updated, err := service.Update(ctx, created.ID, 1, booking.UpdateInput{CheckOut: &newCheckOut})
	require.NoError(t, err)

	assert.Equal(t, 1, updated.UserID)
	assert.Equal(t, 10, updated.HotelID)
	assert.Equal(t, "2026-09-01", updated.CheckIn.Format("2006-01-02"))
	assert.Equal(t, "2026-09-07", updated.CheckOut.Format("2006-01-02"))
}

/*
TestBooking_DoubleDelete verifies that deleting twice yields a 404 on the
second attempt, never a silent success.
*/
func TestBooking_DoubleDelete(t *testing.T) {
	service := newTestService(newFakeRepository())
	ctx := context.Background()

	created, err := service.Create(ctx, 1, 10, date("2026-09-01"), date("2026-09-05"))
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID, 1))

	err = service.Delete(ctx, created.ID, 1)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
}

/*
TestBooking_ListScopedToUser checks that listings only ever contain the
caller's bookings.
*/
func TestBooking_ListScopedToUser(t *testing.T) {
	service := newTestService(newFakeRepository())
	ctx := context.Background()

	_, err := service.Create(ctx, 1, 10, date("2026-09-01"), date("2026-09-02"))
	require.NoError(t, err)
	_, err = service.Create(ctx, 2, 10, date("2026-10-01"), date("2026-10-02"))
	require.NoError(t, err)
	_, err = service.Create(ctx, 1, 11, date("2026-11-01"), date("2026-11-02"))
	require.NoError(t, err)

	mine, err := service.ListForUser(ctx, 1)
	require.NoError(t, err)

	assert.Len(t, mine, 2)
	for _, b := range mine {
		assert.Equal(t, 1, b.UserID)
	}
}

// # Serialization

/*
TestDateOnly_JSON pins the wire format: dates marshal as "YYYY-MM-DD" and
unmarshal from both the plain and the RFC 3339 form.
*/
func TestDateOnly_JSON(t *testing.T) {
	b := booking.Booking{
		ID:       1,
		UserID:   2,
		HotelID:  3,
		CheckIn:  booking.NewDateOnly(date("2026-09-01")),
		CheckOut: booking.NewDateOnly(date("2026-09-05")),
	}

	encoded, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"checkIn":"2026-09-01"`)
	assert.Contains(t, string(encoded), `"checkOut":"2026-09-05"`)

	t.Run("unmarshal_plain", func(t *testing.T) {
		var d booking.DateOnly
		require.NoError(t, json.Unmarshal([]byte(`"2026-09-01"`), &d))
		assert.Equal(t, "2026-09-01", d.Format("2006-01-02"))
	})

	t.Run("unmarshal_rfc3339", func(t *testing.T) {
		var d booking.DateOnly
		require.NoError(t, json.Unmarshal([]byte(`"2026-09-01T15:04:05Z"`), &d))
		assert.Equal(t, "2026-09-01", d.Format("2006-01-02"))
	})

	t.Run("unmarshal_garbage", func(t *testing.T) {
		var d booking.DateOnly
		assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
	})
}
