// Copyright (c) 2026 Reserva. All rights reserved.

package review

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/hotelia/reserva/internal/platform/request"
	"github.com/hotelia/reserva/internal/platform/respond"
	"github.com/hotelia/reserva/internal/platform/validate"
	"github.com/hotelia/reserva/pkg/pagination"
)

// Handler implements the /api/reviews endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the review route table.
//
// # Endpoints
//   - GET    /       : list, global or per-hotel via ?hotelId= (public)
//   - POST   /       : create (auth)
//   - PUT    /{id}   : partial update, author only (auth)
//   - DELETE /{id}   : delete, author only (auth)
func (handler *Handler) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Get("/", handler.list)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Post("/", handler.create)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.delete)
	})

	return router
}

// # Request Payloads

type createReviewRequest struct {
	HotelID int    `json:"hotelId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

/*
list handles GET /api/reviews.

The two listing modes have different shapes, kept for client compatibility:

  - no query: every review wrapped as {"results": [...]}
  - ?hotelId=N: a bare paginated array for that hotel, driven by the
    offset/perPage query parameters

Both embed the author summary on each record.
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	rawHotelID := query.Get(FieldHotelID)
	if rawHotelID == "" {
		reviews, err := handler.service.List(request.Context())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, map[string]any{"results": reviews})
		return
	}

	validator := &validate.Validator{}
	validator.Digits(FieldHotelID, rawHotelID)
	if raw := query.Get(FieldOffset); raw != "" {
		validator.Digits(FieldOffset, raw)
	}
	if raw := query.Get(FieldPerPage); raw != "" {
		validator.Digits(FieldPerPage, raw)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	hotelID, _ := strconv.Atoi(rawHotelID)
	page := pagination.FromRequest(request)

	reviews, err := handler.service.ListByHotel(request.Context(), hotelID, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reviews)
}

// create handles POST /api/reviews.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createReviewRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.PositiveInt(FieldHotelID, input.HotelID).
		Range(FieldRating, input.Rating, 1, 5).
		Required(FieldComment, input.Comment).
		MinLen(FieldComment, input.Comment, 5)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), userID, input.HotelID, input.Rating, input.Comment)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{
		"message": "Review created successfully",
		"review":  created,
	})
}

// update handles PUT /api/reviews/{id}. Only the author may update, and only
// the rating and comment are mutable.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviewID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateReviewRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if input.Rating != nil {
		validator.Range(FieldRating, *input.Rating, 1, 5)
	}
	if input.Comment != nil {
		validator.MinLen(FieldComment, *input.Comment, 5)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), reviewID, userID, UpdateInput{
		Rating:  input.Rating,
		Comment: input.Comment,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "Review updated successfully",
		"review":  updated,
	})
}

// delete handles DELETE /api/reviews/{id}. Only the author may delete.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviewID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), reviewID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "Review deleted successfully",
	})
}
