// Copyright (c) 2026 Reserva. All rights reserved.

package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hotelia/reserva/internal/platform/middleware"
	requestutil "github.com/hotelia/reserva/internal/platform/request"
	"github.com/hotelia/reserva/internal/platform/respond"
	"github.com/hotelia/reserva/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the /api/users endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the user route table.
//
// # Endpoints
//   - POST /           : register (public)
//   - POST /login      : login (public)
//   - GET  /           : list users (auth)
//   - PUT  /{id}       : partial update (auth)
//   - DELETE /{id}     : delete (auth + admin)
func (handler *Handler) Routes(authenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/", handler.register)
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/", handler.list)
		r.Put("/{id}", handler.update)
		r.With(middleware.RequireAdmin).Delete("/{id}", handler.delete)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Gender    string `json:"gender"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Gender    *string `json:"gender"`
}

/*
register handles the creation of a new user account.

POST /api/users

Response:
  - 201: {message, user} — the user projection never includes the password
  - 400: Validation failure with per-field errors
  - 409: Email already registered
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldFirstName, input.FirstName).
		MinLen(FieldFirstName, input.FirstName, 3).
		Required(FieldLastName, input.LastName).
		MinLen(FieldLastName, input.LastName, 3).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, 6).
		OneOf(FieldGender, input.Gender, GenderMale, GenderFemale, GenderOther)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Register(request.Context(), RegisterInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Gender:    input.Gender,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{
		"message": "User created successfully",
		"user":    created.Profile(),
	})
}

/*
login authenticates a user and returns a signed identity token.

POST /api/users/login

Response:
  - 200: {user, token}
  - 400: Unknown email ("Invalid data")
  - 401: Wrong password ("Invalid credentials")
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, 6)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"user":  session.User.Profile(),
		"token": session.Token,
	})
}

// list handles GET /api/users. Password hashes are stripped by the entity's
// JSON mapping.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, users)
}

/*
update handles PUT /api/users/{id} — a partial update of profile fields.

Only firstName, lastName, email, and gender are mutable; provided values
still pass the registration constraints.
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateUserRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if input.FirstName != nil {
		validator.MinLen(FieldFirstName, *input.FirstName, 3)
	}
	if input.LastName != nil {
		validator.MinLen(FieldLastName, *input.LastName, 3)
	}
	if input.Email != nil {
		validator.Email(FieldEmail, *input.Email)
	}
	if input.Gender != nil {
		validator.OneOf(FieldGender, *input.Gender, GenderMale, GenderFemale, GenderOther)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), userID, UpdateInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Gender:    input.Gender,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "User updated successfully",
		"user":    updated,
	})
}

// delete handles DELETE /api/users/{id}. Admin-gated by the route table.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "User deleted successfully",
	})
}
