// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/sankalpsthakur/astronova-sub007/config"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost, policy: cfg.PasswordStrength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidatePasswordStrength rejects passwords below the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	policy := h.policy
	if policy == nil {
		policy = &config.PasswordStrengthConfig{MinLength: 8, MaxLength: 72}
	}

	if len(password) < policy.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password too short")
	}
	// bcrypt truncates beyond 72 bytes.
	maxLength := policy.MaxLength
	if maxLength == 0 || maxLength > 72 {
		maxLength = 72
	}
	if len(password) > maxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password too long")
	}

	if policy.RequireNumbers && !strings.ContainsFunc(password, unicode.IsDigit) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a number")
	}
	if policy.RequireLetters && !strings.ContainsFunc(password, unicode.IsLetter) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a letter")
	}

	return nil
}
