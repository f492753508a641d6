// Copyright (c) 2026 Reserva. All rights reserved.

package review_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelia/reserva/internal/core/review"
	"github.com/hotelia/reserva/internal/platform/ctxutil"
	"github.com/hotelia/reserva/internal/platform/sec"
)

// passthroughAuth fakes an authenticated request for the given user.
func passthroughAuth(userID int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := &sec.AuthClaims{UserID: userID, Role: sec.RoleUser}
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

func newTestRouter(repo *fakeRepository, userID int) http.Handler {
	service := review.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return review.NewHandler(service).Routes(passthroughAuth(userID))
}

/*
TestReviewList_Shapes pins the two incompatible listing shapes: the global
listing wraps records in {"results": [...]}, the per-hotel listing is a bare
array.
*/
func TestReviewList_Shapes(t *testing.T) {
	repo := newFakeRepository()
	router := newTestRouter(repo, 1)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &review.Review{
		UserID: 1, HotelID: 10, Rating: 4, Comment: "Comfortable beds",
		User: &review.UserSummary{ID: 1, FirstName: "Ana", LastName: "Lima"},
	}))
	require.NoError(t, repo.Create(ctx, &review.Review{
		UserID: 2, HotelID: 11, Rating: 2, Comment: "Noisy at night",
	}))

	t.Run("global_wrapped", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var payload struct {
			Results []struct {
				Rating int `json:"rating"`
				User   *struct {
					FirstName string `json:"firstName"`
				} `json:"user"`
			} `json:"results"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		require.Len(t, payload.Results, 2)
		require.NotNil(t, payload.Results[0].User)
		assert.Equal(t, "Ana", payload.Results[0].User.FirstName)
	})

	t.Run("per_hotel_bare_array", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?hotelId=10", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(recorder.Body.String()), "["))

		var reviews []review.Review
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &reviews))
		require.Len(t, reviews, 1)
		assert.Equal(t, 10, reviews[0].HotelID)

		// Same author summary as the global listing.
		require.NotNil(t, reviews[0].User)
		assert.Equal(t, "Ana", reviews[0].User.FirstName)
		assert.Equal(t, "Lima", reviews[0].User.LastName)
	})

	t.Run("non_numeric_hotel_id", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?hotelId=abc", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid hotelId")
	})

	t.Run("non_numeric_offset", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?hotelId=10&offset=two", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

/*
TestReviewCreate_Validation covers the rating bounds and comment length.
*/
func TestReviewCreate_Validation(t *testing.T) {
	router := newTestRouter(newFakeRepository(), 1)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid", `{"hotelId":10,"rating":5,"comment":"Lovely rooftop pool"}`, http.StatusCreated},
		{"rating_too_high", `{"hotelId":10,"rating":6,"comment":"Lovely rooftop pool"}`, http.StatusBadRequest},
		{"rating_zero", `{"hotelId":10,"rating":0,"comment":"Lovely rooftop pool"}`, http.StatusBadRequest},
		{"comment_too_short", `{"hotelId":10,"rating":3,"comment":"meh"}`, http.StatusBadRequest},
		{"missing_hotel", `{"rating":3,"comment":"Lovely rooftop pool"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

/*
TestReviewCreate_AuthorFromToken verifies that the author binding comes from
the token claims, never from the payload.
*/
func TestReviewCreate_AuthorFromToken(t *testing.T) {
	repo := newFakeRepository()
	router := newTestRouter(repo, 7)

	body := `{"hotelId":10,"rating":5,"comment":"Lovely rooftop pool","userId":999}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, recorder.Code)

	var payload struct {
		Message string        `json:"message"`
		Review  review.Review `json:"review"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, "Review created successfully", payload.Message)
	assert.Equal(t, 7, payload.Review.UserID)
}
