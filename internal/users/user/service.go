// Copyright (c) 2026 Reserva. All rights reserved.

package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hotelia/reserva/internal/platform/apperr"
	"github.com/hotelia/reserva/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider defines the contract for generating identity tokens.
type TokenProvider interface {
	// GenerateToken creates a signed JWT embedding {userId, email, role}.
	GenerateToken(userID int, email string, role sec.Role) (string, error)
}

// Service implements the identity use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	repo          Repository
	tokenProvider TokenProvider
	logger        *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repo Repository, tokenProvider TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		repo:          repo,
		tokenProvider: tokenProvider,
		logger:        logger,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new user.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Gender    string
}

/*
Register validates, hashes, and persists a brand new user account.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity (password hash never serialized)
  - error: Conflict (if the email is taken) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Verify email uniqueness. Return a client-safe Conflict error. Only a
	// NotFound lookup means the email is free; any other failure is a store
	// fault and must not fall through to the create path.
	_, err := service.repo.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("user_service_email_lookup_failed: %w", err)
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user_service_hash_failed: %w", err)
	}

	newUser := &User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Gender:       input.Gender,
		Role:         sec.RoleUser,
	}

	if err := service.repo.Create(context, newUser); err != nil {
		return nil, fmt.Errorf("user_service_register_failed: %w", err)
	}

	return newUser, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully authenticated login.
type LoginSession struct {
	Token string
	User  *User
}

/*
Login validates user credentials and issues an identity token.

Description: An unknown email fails with 400 and a wrong password with 401;
the two cases are deliberately distinguishable, matching the public API
contract. The issued token embeds {userId, email, role} of the stored user.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Signed token plus the authenticated user
  - error: BadRequest, Unauthorized, or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	existing, err := service.repo.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.BadRequest("Invalid data")
	}

	// Constant-time comparison inside bcrypt prevents timing attacks.
	if !sec.CheckPasswordHash(input.Password, existing.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	token, err := service.tokenProvider.GenerateToken(existing.ID, existing.Email, existing.Role)
	if err != nil {
		return nil, fmt.Errorf("user_service_token_generation_failed: %w", err)
	}

	return &LoginSession{Token: token, User: existing}, nil
}

// # User Administration

// List returns every registered user. Password hashes are stripped by the
// entity's JSON mapping, never by the caller.
func (service *Service) List(context context.Context) ([]*User, error) {
	return service.repo.List(context)
}

// UpdateInput defines the mutable subset of user fields.
//
// The password and role are deliberately not updatable through this path.
type UpdateInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Gender    *string
}

/*
Update applies a partial set of changes to a user record.

Parameters:
  - context: context.Context
  - userID: int
  - input: UpdateInput

Returns:
  - *User: The updated record
  - error: NotFound or storage failures
*/
func (service *Service) Update(context context.Context, userID int, input UpdateInput) (*User, error) {
	existing, err := service.repo.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	// Apply delta updates
	if input.FirstName != nil {
		existing.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		existing.LastName = *input.LastName
	}
	if input.Email != nil {
		existing.Email = *input.Email
	}
	if input.Gender != nil {
		existing.Gender = *input.Gender
	}

	if err := service.repo.Update(context, existing); err != nil {
		return nil, fmt.Errorf("user_service_update_failed: %w", err)
	}

	service.logger.Info("user_updated", slog.Int("user_id", userID))

	return existing, nil
}

// Delete removes a user by ID. Deleting an absent user returns NotFound,
// never a silent success.
func (service *Service) Delete(context context.Context, userID int) error {
	if err := service.repo.Delete(context, userID); err != nil {
		return err
	}

	service.logger.Info("user_deleted", slog.Int("user_id", userID))

	return nil
}
