// Copyright (c) 2026 Reserva. All rights reserved.

package booking

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/hotelia/reserva/internal/platform/request"
	"github.com/hotelia/reserva/internal/platform/respond"
	"github.com/hotelia/reserva/internal/platform/validate"
)

// Handler implements the /api/bookings endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the booking route table.
// Every booking endpoint requires authentication and operates on the
// caller's own bookings only.
func (handler *Handler) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()
	router.Use(authenticate)

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)

	return router
}

// # Request Payloads

type createBookingRequest struct {
	HotelID  int    `json:"hotelId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type updateBookingRequest struct {
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
}

// list handles GET /api/bookings. Returns the caller's bookings as a bare
// array with hotel summaries embedded.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookings, err := handler.service.ListForUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, bookings)
}

// create handles POST /api/bookings.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createBookingRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.PositiveInt(FieldHotelID, input.HotelID).
		Required(FieldCheckIn, input.CheckIn).
		Date(FieldCheckIn, input.CheckIn).
		Required(FieldCheckOut, input.CheckOut).
		Date(FieldCheckOut, input.CheckOut)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	checkIn, _ := parseDate(input.CheckIn)
	checkOut, _ := parseDate(input.CheckOut)

	if err := (&validate.Validator{}).
		Custom(FieldCheckOut, !checkOut.After(checkIn), "Must be after checkIn").
		Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), userID, input.HotelID, checkIn, checkOut)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{
		"message": "Booking created successfully",
		"booking": created,
	})
}

// update handles PUT /api/bookings/{id}. Only the stay dates can change.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookingID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateBookingRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if input.CheckIn != nil {
		validator.Date(FieldCheckIn, *input.CheckIn)
	}
	if input.CheckOut != nil {
		validator.Date(FieldCheckOut, *input.CheckOut)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var updateInput UpdateInput
	if input.CheckIn != nil {
		checkIn, _ := parseDate(*input.CheckIn)
		updateInput.CheckIn = &checkIn
	}
	if input.CheckOut != nil {
		checkOut, _ := parseDate(*input.CheckOut)
		updateInput.CheckOut = &checkOut
	}

	if updateInput.CheckIn != nil && updateInput.CheckOut != nil {
		if err := (&validate.Validator{}).
			Custom(FieldCheckOut, !updateInput.CheckOut.After(*updateInput.CheckIn), "Must be after checkIn").
			Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	updated, err := handler.service.Update(request.Context(), bookingID, userID, updateInput)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "Booking updated successfully",
		"booking": updated,
	})
}

// delete handles DELETE /api/bookings/{id}.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookingID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), bookingID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "Booking deleted successfully",
	})
}

// parseDate accepts the same formats the Date validation rule does.
func parseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(dateLayout, value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}
