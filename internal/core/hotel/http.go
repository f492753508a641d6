// Copyright (c) 2026 Reserva. All rights reserved.

package hotel

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/hotelia/reserva/internal/platform/request"
	"github.com/hotelia/reserva/internal/platform/respond"
	"github.com/hotelia/reserva/internal/platform/validate"
)

// Handler implements the /api/hotels endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the hotel route table.
//
// # Endpoints
//   - GET    /       : list with optional name/cityId filters (public)
//   - GET    /{id}   : single hotel (public)
//   - POST   /       : create (auth)
//   - PUT    /{id}   : partial update (auth)
//   - DELETE /{id}   : delete (auth)
func (handler *Handler) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

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

type createHotelRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Address     string  `json:"address"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	CityID      int     `json:"cityId"`
}

type updateHotelRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Address     *string  `json:"address"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	CityID      *int     `json:"cityId"`
}

// hotelWithAverage is the list projection. The listing historically exposes
// the review mean twice ("rating" for display, "average" for sorting) and
// both fields are part of the public contract.
type hotelWithAverage struct {
	*Hotel
	Average float64 `json:"average"`
}

/*
list handles GET /api/hotels.

Optional query filters: name (substring) and cityId (digit-only string,
validated before conversion). Each hotel embeds images and the computed
review average.
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()
	filter := ListFilter{Name: query.Get("name")}

	if rawCityID := query.Get("cityId"); rawCityID != "" {
		validator := &validate.Validator{}
		if err := validator.Digits(FieldCityID, rawCityID).Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
		filter.CityID, _ = strconv.Atoi(rawCityID)
	}

	hotels, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	projected := make([]hotelWithAverage, 0, len(hotels))
	for _, h := range hotels {
		projected = append(projected, hotelWithAverage{Hotel: h, Average: h.Rating})
	}

	respond.OK(writer, projected)
}

// get handles GET /api/hotels/{id}.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	hotelID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.Get(request.Context(), hotelID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

// create handles POST /api/hotels.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createHotelRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validateHotelFields(&input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), CreateInput{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Address:     input.Address,
		Lat:         input.Lat,
		Lon:         input.Lon,
		CityID:      input.CityID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{
		"message": "Hotel created successfully",
		"hotel":   created,
	})
}

// update handles PUT /api/hotels/{id}.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	hotelID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateHotelRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if input.Name != nil {
		validator.MinLen(FieldName, *input.Name, 3)
	}
	if input.Description != nil {
		validator.MinLen(FieldDescription, *input.Description, 10)
	}
	if input.Price != nil {
		validator.PositiveFloat(FieldPrice, *input.Price)
	}
	if input.Address != nil {
		validator.MinLen(FieldAddress, *input.Address, 5)
	}
	if input.Lat != nil {
		validator.FloatRange(FieldLat, *input.Lat, -90, 90)
	}
	if input.Lon != nil {
		validator.FloatRange(FieldLon, *input.Lon, -180, 180)
	}
	if input.CityID != nil {
		validator.PositiveInt(FieldCityID, *input.CityID)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), hotelID, UpdateInput{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Address:     input.Address,
		Lat:         input.Lat,
		Lon:         input.Lon,
		CityID:      input.CityID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "Hotel updated successfully",
		"hotel":   updated,
	})
}

// delete handles DELETE /api/hotels/{id}.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	hotelID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), hotelID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "Hotel deleted successfully",
	})
}

// validateHotelFields runs the full field constraints for hotel creation.
func validateHotelFields(input *createHotelRequest) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MinLen(FieldName, input.Name, 3).
		Required(FieldDescription, input.Description).
		MinLen(FieldDescription, input.Description, 10).
		PositiveFloat(FieldPrice, input.Price).
		Required(FieldAddress, input.Address).
		MinLen(FieldAddress, input.Address, 5).
		FloatRange(FieldLat, input.Lat, -90, 90).
		FloatRange(FieldLon, input.Lon, -180, 180).
		PositiveInt(FieldCityID, input.CityID)

	return validator.Err()
}
