// Copyright (c) 2026 Reserva. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces defined at the consumer side.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Distinguishable verification failures. The authentication middleware maps
// them to distinct client-facing messages ("Invalid token" vs "Token expired").
var (
	// ErrTokenMalformed covers parse failures, bad signatures, and unexpected
	// signing algorithms.
	ErrTokenMalformed = errors.New("sec: token is malformed or has an invalid signature")

	// ErrTokenExpired means the token was valid but its exp claim has passed.
	ErrTokenExpired = errors.New("sec: token is expired")

	// ErrSecretTooShort is returned at construction time when the signing
	// secret does not meet the minimum length.
	ErrSecretTooShort = errors.New("sec: JWT secret must be at least 10 characters")
)

// minSecretLength is the shortest accepted signing secret.
const minSecretLength = 10

// AuthClaims represents the payload embedded inside a JWT access token.
//
// # Why custom claims?
//
// By embedding the UserID, Email, and Role directly inside the JWT, the
// authentication middleware can reconstruct the active identity WITHOUT
// querying the database on every single API request.
//
// # Trust boundary
//
// Claims are trusted for the lifetime of the token. If a user's role changes
// after issuance, the old token retains the old role's privileges until expiry.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID int    `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// The signing secret is process-wide, loaded once at startup, and immutable.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a new TokenService.
//
// It fails with [ErrSecretTooShort] when the secret is shorter than 10
// characters; callers must treat that as a startup configuration error.
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < minSecretLength {
		return nil, ErrSecretTooShort
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// GenerateToken creates a new signed JWT embedding the given identity.
func (service *TokenService) GenerateToken(userID int, email string, role Role) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
//
// # Failure modes
//   - [ErrTokenExpired] when the token parsed and verified but is past its exp claim.
//   - [ErrTokenMalformed] for every other failure (parse errors, bad signature,
//     unexpected algorithm).
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
