// Copyright (c) 2026 Reserva. All rights reserved.

package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelia/reserva/internal/platform/apperr"
)

// Internal test package: Error depends on the package-level developmentMode
// switch, so the tests flip it directly.

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()
	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

/*
TestError_AppError verifies that a structured AppError keeps its status and
message in the envelope.
*/
func TestError_AppError(t *testing.T) {
	developmentMode = false

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/hotels/99", nil)

	Error(recorder, request, apperr.NotFound("Hotel"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Hotel not found", envelope.Message)
	assert.Empty(t, envelope.Errors)
	assert.Empty(t, envelope.Stack)
}

/*
TestError_ValidationDetails verifies that field errors travel in the "errors"
array of the envelope.
*/
func TestError_ValidationDetails(t *testing.T) {
	developmentMode = false

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/users", nil)

	Error(recorder, request, apperr.Validation("Validation failed",
		apperr.FieldError{Field: "email", Message: "Must be a valid email address"},
		apperr.FieldError{Field: "password", Message: "Must be at least 6 characters"},
	))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	assert.Equal(t, "Validation failed", envelope.Message)
	require.Len(t, envelope.Errors, 2)
	assert.Equal(t, "email", envelope.Errors[0].Field)
}

/*
TestError_UnknownError verifies that a plain Go error collapses to a generic
500 and never exposes the internal message in production mode.
*/
func TestError_UnknownError(t *testing.T) {
	developmentMode = false

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/cities", nil)

	Error(recorder, request, errors.New("pq: connection refused on 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	assert.Equal(t, "Internal server error", envelope.Message)
	assert.NotContains(t, recorder.Body.String(), "10.0.0.3")
}

/*
TestError_DevelopmentStack verifies that the underlying cause surfaces as
"stack" in development mode only.
*/
func TestError_DevelopmentStack(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		developmentMode = true
		defer func() { developmentMode = false }()

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/cities", nil)

		Error(recorder, request, errors.New("boom: exploded"))

		envelope := decodeEnvelope(t, recorder)
		assert.Equal(t, "Internal server error", envelope.Message)
		assert.Contains(t, envelope.Stack, "boom: exploded")
	})

	t.Run("production", func(t *testing.T) {
		developmentMode = false

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/cities", nil)

		Error(recorder, request, errors.New("boom: exploded"))

		envelope := decodeEnvelope(t, recorder)
		assert.Empty(t, envelope.Stack)
	})
}

/*
TestJSON_Shapes verifies that success helpers write the payload as-is with
the right status codes (bare arrays included).
*/
func TestJSON_Shapes(t *testing.T) {
	t.Run("ok_bare_array", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		OK(recorder, []string{"a", "b"})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `["a","b"]`, recorder.Body.String())
	})

	t.Run("created", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		Created(recorder, map[string]any{"id": 1})

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.JSONEq(t, `{"id":1}`, recorder.Body.String())
	})

	t.Run("no_content", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		NoContent(recorder)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})
}
