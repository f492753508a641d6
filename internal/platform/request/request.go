// Copyright (c) 2026 Reserva. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hotelia/reserva/internal/platform/apperr"
	"github.com/hotelia/reserva/internal/platform/ctxutil"
	"github.com/hotelia/reserva/internal/platform/sec"
	"github.com/hotelia/reserva/internal/platform/validate"
)

// DecodeJSON reads the request body and decodes it into the target structure.
//
// Returns [validate.ErrInvalidJSON] if decoding fails.
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param retrieves a named URL parameter from the request.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// IntID validates and converts the named URL parameter as a numeric resource ID.
//
// The parameter must be a digit-only string; the check runs before conversion
// so a malformed ID surfaces as a structured validation failure rather than a
// strconv error.
func IntID(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)

	validator := &validate.Validator{}
	if err := validator.Digits(name, raw).Err(); err != nil {
		return 0, err
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.BadRequest("Invalid " + name)
	}

	return id, nil
}

// Claims extracts the authenticated identity from the request context.
//
// Returns nil if the request is not authenticated.
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

// RequiredClaims ensures the request is authenticated and returns the identity.
//
// Returns apperr.Unauthorized if the authentication middleware did not run
// or did not attach claims.
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("No token provided")
	}
	return claims, nil
}

// RequiredUserID returns the user ID of the currently authenticated identity.
func RequiredUserID(request *http.Request) (int, error) {
	claims, err := RequiredClaims(request)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
