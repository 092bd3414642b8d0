// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies an authentication provider.
type ProviderType string

const (
	// ProviderTypeEmail is password-based login.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeApple is Sign in with Apple.
	ProviderTypeApple ProviderType = "apple"
)

// Authentication represents a single method of logging in (a credential).
// An email/password pair is one record; a linked Apple ID is another.
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this authentication record.
	UserID         uuid.UUID    // Links this authentication method to its User.
	Provider       ProviderType // The authentication provider.
	ProviderUserID string       // The provider's stable subject (email address, or Apple's 'sub' claim).
	PasswordHash   string       // bcrypt hash, only set when Provider is email.
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived, authorized user session. It is used
// to obtain a new access token without re-presenting credentials.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string    // SHA-256 hash of the raw token; the raw value is never stored.
	ExpiresAt time.Time // When this session becomes invalid.
	CreatedAt time.Time
}

// Expired reports whether the session has lapsed at the given time.
func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
