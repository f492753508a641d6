// Copyright (c) 2026 Reserva. All rights reserved.

package user_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelia/reserva/internal/platform/apperr"
	"github.com/hotelia/reserva/internal/platform/ctxutil"
	"github.com/hotelia/reserva/internal/platform/sec"
	"github.com/hotelia/reserva/internal/users/user"
)

// # Test Doubles

// fakeRepository is an in-memory Repository for handler tests.
type fakeRepository struct {
	byID   map[int]*user.User
	nextID int

	// findByEmailErr, when set, is returned by every FindByEmail call.
	findByEmailErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[int]*user.User), nextID: 1}
}

func (f *fakeRepository) Create(_ context.Context, u *user.User) error {
	u.ID = f.nextID
	f.nextID++
	stored := *u
	f.byID[u.ID] = &stored
	return nil
}

func (f *fakeRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	if f.findByEmailErr != nil {
		return nil, f.findByEmailErr
	}
	for _, u := range f.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeRepository) FindByID(_ context.Context, id int) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	clone := *u
	return &clone, nil
}

func (f *fakeRepository) List(_ context.Context) ([]*user.User, error) {
	users := make([]*user.User, 0, len(f.byID))
	for i := 1; i < f.nextID; i++ {
		if u, ok := f.byID[i]; ok {
			clone := *u
			users = append(users, &clone)
		}
	}
	return users, nil
}

func (f *fakeRepository) Update(_ context.Context, u *user.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return apperr.NotFound("User")
	}
	stored := *u
	f.byID[u.ID] = &stored
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id int) error {
	if _, ok := f.byID[id]; !ok {
		return apperr.NotFound("User")
	}
	delete(f.byID, id)
	return nil
}

// stubTokens issues predictable tokens for assertions.
type stubTokens struct{}

func (stubTokens) GenerateToken(userID int, email string, role sec.Role) (string, error) {
	return fmt.Sprintf("token-%d-%s-%s", userID, email, role), nil
}

// passthroughAuth fakes an authenticated request with the given claims.
func passthroughAuth(claims *sec.AuthClaims) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if claims != nil {
				ctx := ctxutil.WithAuthUser(request.Context(), claims)
				request = request.WithContext(ctx)
			}
			next.ServeHTTP(writer, request)
		})
	}
}

func newTestRouter(repo *fakeRepository, claims *sec.AuthClaims) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := user.NewService(repo, stubTokens{}, logger)
	handler := user.NewHandler(service)
	return handler.Routes(passthroughAuth(claims))
}

func registerTestUser(t *testing.T, router http.Handler, email string) {
	t.Helper()
	body := fmt.Sprintf(
		`{"firstName":"Ana","lastName":"Lima","email":%q,"password":"secret1","gender":"female"}`,
		email,
	)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, recorder.Code)
}

// # Registration

/*
TestRegister_Success checks the 201 contract: wrapped profile without any
password material in the payload.
*/
func TestRegister_Success(t *testing.T) {
	router := newTestRouter(newFakeRepository(), nil)

	body := `{"firstName":"Ana","lastName":"Lima","email":"ana@reserva.app","password":"secret1","gender":"female"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var payload struct {
		Message string `json:"message"`
		User    struct {
			ID        int    `json:"id"`
			Email     string `json:"email"`
			FirstName string `json:"firstName"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))

	assert.Equal(t, "User created successfully", payload.Message)
	assert.Equal(t, 1, payload.User.ID)
	assert.Equal(t, "ana@reserva.app", payload.User.Email)

	// The password must never appear in any form.
	lower := strings.ToLower(recorder.Body.String())
	assert.NotContains(t, lower, "password")
	assert.NotContains(t, lower, "secret1")
}

/*
TestRegister_DuplicateEmail checks the 409 path.
*/
func TestRegister_DuplicateEmail(t *testing.T) {
	router := newTestRouter(newFakeRepository(), nil)
	registerTestUser(t, router, "ana@reserva.app")

	body := `{"firstName":"Another","lastName":"Person","email":"ana@reserva.app","password":"secret2","gender":"male"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Email is already registered")
}

/*
TestRegister_LookupFault checks that a store fault during the uniqueness
lookup surfaces as a 500 instead of being mistaken for a free email.
*/
func TestRegister_LookupFault(t *testing.T) {
	repo := newFakeRepository()
	repo.findByEmailErr = apperr.Internal(fmt.Errorf("connection reset"))
	router := newTestRouter(repo, nil)

	body := `{"firstName":"Ana","lastName":"Lima","email":"ana@reserva.app","password":"secret1","gender":"female"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Empty(t, repo.byID)
}

/*
TestRegister_Validation checks that invalid payloads fail with aggregated
field errors before any persistence happens.
*/
func TestRegister_Validation(t *testing.T) {
	repo := newFakeRepository()
	router := newTestRouter(repo, nil)

	body := `{"firstName":"Al","lastName":"","email":"nope","password":"123","gender":"robot"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	assert.False(t, envelope.Success)
	assert.Equal(t, "Validation failed", envelope.Message)
	assert.NotEmpty(t, envelope.Errors)
	assert.Empty(t, repo.byID)
}

// # Login

/*
TestLogin pins the asymmetric failure contract: unknown email is a 400 with
"Invalid data", wrong password a 401 with "Invalid credentials", success a
200 carrying the token and profile.
*/
func TestLogin(t *testing.T) {
	router := newTestRouter(newFakeRepository(), nil)
	registerTestUser(t, router, "ana@reserva.app")

	t.Run("unknown_email", func(t *testing.T) {
		body := `{"email":"ghost@reserva.app","password":"secret1"}`
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid data")
	})

	t.Run("wrong_password", func(t *testing.T) {
		body := `{"email":"ana@reserva.app","password":"wrong-pass"}`
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid credentials")
	})

	t.Run("success", func(t *testing.T) {
		body := `{"email":"ana@reserva.app","password":"secret1"}`
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var payload struct {
			User  struct{ Email string } `json:"user"`
			Token string                 `json:"token"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		assert.Equal(t, "ana@reserva.app", payload.User.Email)
		assert.Equal(t, "token-1-ana@reserva.app-USER", payload.Token)
	})
}

// # Administration

/*
TestListUsers checks the bare-array shape and the absence of hashes.
*/
func TestListUsers(t *testing.T) {
	claims := &sec.AuthClaims{UserID: 1, Role: sec.RoleUser}
	router := newTestRouter(newFakeRepository(), claims)
	registerTestUser(t, router, "a@reserva.app")
	registerTestUser(t, router, "b@reserva.app")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &users))
	assert.Len(t, users, 2)
	assert.NotContains(t, strings.ToLower(recorder.Body.String()), "password")
}

/*
TestUpdateUser checks the partial-update semantics: untouched fields keep
their values and the response wraps the updated record.
*/
func TestUpdateUser(t *testing.T) {
	claims := &sec.AuthClaims{UserID: 1, Role: sec.RoleUser}
	router := newTestRouter(newFakeRepository(), claims)
	registerTestUser(t, router, "ana@reserva.app")

	body := `{"firstName":"Anabel"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/1", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var payload struct {
		Message string `json:"message"`
		User    struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Email     string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))

	assert.Equal(t, "User updated successfully", payload.Message)
	assert.Equal(t, "Anabel", payload.User.FirstName)
	assert.Equal(t, "Lima", payload.User.LastName)
	assert.Equal(t, "ana@reserva.app", payload.User.Email)
}

/*
TestDeleteUser_AdminGate checks that deletion requires the ADMIN role and
that deleting a missing user is a 404, not a silent success.
*/
func TestDeleteUser_AdminGate(t *testing.T) {
	t.Run("plain_user_forbidden", func(t *testing.T) {
		claims := &sec.AuthClaims{UserID: 1, Role: sec.RoleUser}
		router := newTestRouter(newFakeRepository(), claims)
		registerTestUser(t, router, "ana@reserva.app")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/1", nil))

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Admin privileges required")
	})

	t.Run("admin_success", func(t *testing.T) {
		claims := &sec.AuthClaims{UserID: 9, Role: sec.RoleAdmin}
		repo := newFakeRepository()
		router := newTestRouter(repo, claims)
		registerTestUser(t, router, "ana@reserva.app")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/1", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "User deleted successfully")
		assert.Empty(t, repo.byID)
	})

	t.Run("admin_missing_user", func(t *testing.T) {
		claims := &sec.AuthClaims{UserID: 9, Role: sec.RoleAdmin}
		router := newTestRouter(newFakeRepository(), claims)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/42", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "User not found")
	})
}
