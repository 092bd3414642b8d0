// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AppleSignInInput carries the Apple identity token. FullName is only
// present on the very first sign-in; Apple never sends it again.
type AppleSignInInput struct {
	IdentityToken string
	FullName      string
}

// RefreshInput carries the refresh token presented for rotation.
type RefreshInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// RegisterUser creates an account with an email/password credential.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// Login exchanges email/password credentials for a token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// AppleSignIn verifies an Apple identity token and logs the user in,
	// creating the account on first sign-in.
	AppleSignIn(ctx context.Context, input *AppleSignInInput) (*LoginOutput, error)

	// Refresh rotates a valid refresh token into a new token pair.
	Refresh(ctx context.Context, input *RefreshInput) (*LoginOutput, error)

	// Logout revokes the session identified by the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
