package service

import (
	"context"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
)

// ExternalIdentity represents a verified identity from a sign-in provider.
type ExternalIdentity struct {
	Subject       string              // Provider-stable user ID (Apple's 'sub' claim).
	Email         string              // Email address, may be a private relay address.
	Name          string              // Display name, empty after the first Apple sign-in.
	Provider      entity.ProviderType // The identity provider.
	EmailVerified bool
}

// IdentityVerifier defines the interface for verifying identity tokens from
// external sign-in providers (Sign in with Apple).
type IdentityVerifier interface {
	// VerifyIdentityToken checks the token's signature metadata, issuer,
	// audience and expiry, and returns the verified identity.
	VerifyIdentityToken(ctx context.Context, identityToken string) (*ExternalIdentity, error)

	// Provider returns the provider this verifier handles.
	Provider() entity.ProviderType
}
