// Copyright (c) 2026 Reserva. All rights reserved.

// Package middleware provides the HTTP middleware chain for the Reserva API server.
//
// # Architecture
//
// Middleware intercepts incoming HTTP requests to apply global policies
// before they reach the domain handlers. This includes cross-cutting concerns
// like Logging, AuthZ/AuthN, Rate Limiting, and CORS.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/hotelia/reserva/internal/platform/apperr"
	"github.com/hotelia/reserva/internal/platform/constants"
	"github.com/hotelia/reserva/internal/platform/ctxutil"
	"github.com/hotelia/reserva/internal/platform/respond"
	"github.com/hotelia/reserva/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the [sec.TokenService]
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// It is mounted only on routes that require authentication; requests without
// a valid token never reach the handler.
//
// # Flow
//  1. Require an 'Authorization: Bearer <token>' header. The "Bearer " prefix
//     match is case-sensitive; anything else is treated as no token.
//  2. Verify the JWT via [TokenVerifier], reporting "Invalid token" and
//     "Token expired" as distinguishable failures.
//  3. Inject [*sec.AuthClaims] into the request context for downstream use.
//
// The middleware never touches the user store: the token's embedded claims
// are trusted for the lifetime of the request. There is no revocation list
// and no re-fetch of the current role.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Scheme Validation ──────────────────────────────────────────
			if !strings.HasPrefix(authHeader, constants.BearerPrefix) {
				respond.Error(writer, request, apperr.Unauthorized("No token provided"))
				return
			}

			tokenStr := authHeader[len(constants.BearerPrefix):]
			if tokenStr == "" {
				respond.Error(writer, request, apperr.Unauthorized("No token provided"))
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				if errors.Is(err, sec.ErrTokenExpired) {
					respond.Error(writer, request, apperr.Unauthorized("Token expired"))
					return
				}
				respond.Error(writer, request, apperr.Unauthorized("Invalid token"))
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAdmin blocks requests whose authenticated identity is not an admin.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check that [*sec.AuthClaims] exists in context (implies AuthN).
//  2. Check claims.Role == ADMIN; resource ownership is irrelevant here.
//  3. On mismatch, abort with HTTP 403 Forbidden. No side effects.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthUser(request.Context())

		// ── 1. Authentication Check ───────────────────────────────────────
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("No token provided"))
			return
		}

		// ── 2. Authorization Check ────────────────────────────────────────
		if !claims.Role.IsAdmin() {
			respond.Error(writer, request, apperr.Forbidden("Admin privileges required"))
			return
		}

		next.ServeHTTP(writer, request)
	})
}
