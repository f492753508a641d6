// Copyright (c) 2026 Reserva. All rights reserved.

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// List endpoints that support windowing take "offset" and "perPage" query
// parameters as digit-only strings. Handlers validate the raw strings first;
// this package converts and clamps them.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultPerPage is the number of items per page if not specified.
	DefaultPerPage = 10
	// MaxPerPage is the upper bound for items per page to prevent system abuse.
	MaxPerPage = 100
	// DefaultOffset is the starting row offset.
	DefaultOffset = 0
)

// Params holds the parsed offset and page size from a request's query string.
type Params struct {
	Offset  int
	PerPage int
}

// FromRequest parses "offset" and "perPage" query parameters from an HTTP request.
//
// # Clamping
//
// Missing, negative, or excessive values are clamped to [DefaultOffset],
// [DefaultPerPage], or [MaxPerPage]. Digit-only validation of the raw values
// is the caller's responsibility and happens before this conversion.
func FromRequest(r *http.Request) Params {
	offset := parseIntParam(r, "offset", DefaultOffset)
	perPage := parseIntParam(r, "perPage", DefaultPerPage)

	if offset < 0 {
		offset = DefaultOffset
	}

	if perPage < 1 || perPage > MaxPerPage {
		perPage = DefaultPerPage
	}

	return Params{Offset: offset, PerPage: perPage}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
