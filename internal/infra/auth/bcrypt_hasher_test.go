package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sankalpsthakur/astronova-sub007/config"
)

func hasherConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: 4} // minimum cost keeps tests fast
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength:      8,
		MaxLength:      72,
		RequireNumbers: true,
		RequireLetters: true,
	}

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(hasherConfig())

	hash, err := hasher.Hash("correct horse 42")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse 42", hash)

	assert.True(t, hasher.Check("correct horse 42", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(hasherConfig())

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "sturdy-pass-7", false},
		{"too short", "ab1", true},
		{"no number", "letters-only-here", true},
		{"no letter", "1234567890", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
