// Copyright (c) 2026 Reserva. All rights reserved.

package image

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/hotelia/reserva/internal/platform/request"
	"github.com/hotelia/reserva/internal/platform/respond"
	"github.com/hotelia/reserva/internal/platform/validate"
)

// Handler implements the /api/images endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the image route table.
// Every image endpoint requires authentication.
func (handler *Handler) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()
	router.Use(authenticate)

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Delete("/{id}", handler.delete)

	return router
}

type createImageRequest struct {
	URL     string `json:"url"`
	HotelID int    `json:"hotelId"`
}

// list handles GET /api/images.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	images, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, images)
}

// create handles POST /api/images. Responds with the bare created record.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createImageRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldURL, input.URL).
		URL(FieldURL, input.URL).
		PositiveInt(FieldHotelID, input.HotelID)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), input.URL, input.HotelID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

// delete handles DELETE /api/images/{id}. Responds 204 with no body.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	imageID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), imageID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
