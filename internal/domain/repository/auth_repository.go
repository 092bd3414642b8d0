// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
)

// Domain-specific errors for authentication persistence.
var (
	// ErrAuthNotFound is returned when an authentication method is not found.
	ErrAuthNotFound = errors.New("authentication method not found")
)

// AuthRepository defines the standard operations for credential persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method
	// (email/password or a linked Apple ID).
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves an authentication method by its provider
	// and provider-specific subject.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)
}
