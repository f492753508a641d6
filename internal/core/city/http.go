// Copyright (c) 2026 Reserva. All rights reserved.

package city

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hotelia/reserva/internal/platform/middleware"
	requestutil "github.com/hotelia/reserva/internal/platform/request"
	"github.com/hotelia/reserva/internal/platform/respond"
	"github.com/hotelia/reserva/internal/platform/validate"
)

// Handler implements the /api/cities endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the city route table.
//
// # Endpoints
//   - GET    /       : list with embedded hotels (public)
//   - POST   /       : create (auth)
//   - PUT    /{id}   : partial update (auth, admin)
//   - DELETE /{id}   : delete (auth, admin)
func (handler *Handler) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Get("/", handler.list)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Post("/", handler.create)
		r.With(middleware.RequireAdmin).Put("/{id}", handler.update)
		r.With(middleware.RequireAdmin).Delete("/{id}", handler.delete)
	})

	return router
}

// # Request Payloads

type createCityRequest struct {
	Name      string `json:"name"`
	Country   string `json:"country"`
	CountryID string `json:"countryId"`
}

type updateCityRequest struct {
	Name      *string `json:"name"`
	Country   *string `json:"country"`
	CountryID *string `json:"countryId"`
}

// list handles GET /api/cities.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	cities, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, cities)
}

// create handles POST /api/cities.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createCityRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MinLen(FieldName, input.Name, 2).
		Required(FieldCountry, input.Country).
		MinLen(FieldCountry, input.Country, 2).
		Required(FieldCountryID, input.CountryID).
		ExactLen(FieldCountryID, input.CountryID, 2)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), CreateInput{
		Name:      input.Name,
		Country:   input.Country,
		CountryID: input.CountryID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{
		"message": "City created successfully",
		"city":    created,
	})
}

// update handles PUT /api/cities/{id}.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	cityID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateCityRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if input.Name != nil {
		validator.MinLen(FieldName, *input.Name, 2)
	}
	if input.Country != nil {
		validator.MinLen(FieldCountry, *input.Country, 2)
	}
	if input.CountryID != nil {
		validator.ExactLen(FieldCountryID, *input.CountryID, 2)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), cityID, UpdateInput{
		Name:      input.Name,
		Country:   input.Country,
		CountryID: input.CountryID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "City updated successfully",
		"city":    updated,
	})
}

// delete handles DELETE /api/cities/{id}.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	cityID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), cityID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "City deleted successfully",
	})
}
