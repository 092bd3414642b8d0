package apple

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
)

const (
	testBundleID = "com.example.astronova"
	testKeyID    = "test-key-1"
)

func jwksDocument(key *rsa.PublicKey, kid string) map[string]any {
	return map[string]any{
		"keys": []map[string]string{{
			"kty": "RSA",
			"kid": kid,
			"alg": "RS256",
			"use": "sig",
			"n":   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
		}},
	}
}

type verifierFixtures struct {
	verifier *Verifier
	key      *rsa.PrivateKey
	fetches  int
}

// newVerifierFixtures builds a verifier pointed at a local key server that
// publishes the test signing key.
func newVerifierFixtures(t *testing.T) *verifierFixtures {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	fx := &verifierFixtures{key: key}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fx.fetches++
		require.NoError(t, json.NewEncoder(w).Encode(jwksDocument(&key.PublicKey, testKeyID)))
	}))
	t.Cleanup(server.Close)

	fx.verifier = &Verifier{
		bundleID: testBundleID,
		jwksURL:  server.URL,
		httpc:    server.Client(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		keys:     make(map[string]*rsa.PublicKey),
	}

	return fx
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"iss":            appleIssuer,
		"sub":            "001234.abcdef.5678",
		"aud":            testBundleID,
		"exp":            time.Now().Add(time.Hour).Unix(),
		"iat":            time.Now().Unix(),
		"email":          "relay@privaterelay.appleid.com",
		"email_verified": "true",
	}
}

func signedToken(t *testing.T, key *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid

	signed, err := token.SignedString(key)
	require.NoError(t, err)

	return signed
}

func TestVerifier_ValidToken(t *testing.T) {
	fx := newVerifierFixtures(t)

	identity, err := fx.verifier.VerifyIdentityToken(context.Background(),
		signedToken(t, fx.key, testKeyID, validClaims()))
	require.NoError(t, err)

	assert.Equal(t, "001234.abcdef.5678", identity.Subject)
	assert.Equal(t, "relay@privaterelay.appleid.com", identity.Email)
	assert.Equal(t, entity.ProviderTypeApple, identity.Provider)
	assert.True(t, identity.EmailVerified)
}

func TestVerifier_RejectsUnsignedToken(t *testing.T) {
	fx := newVerifierFixtures(t)

	payload, err := json.Marshal(validClaims())
	require.NoError(t, err)

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","kid":"` + testKeyID + `"}`))
	body := base64.RawURLEncoding.EncodeToString(payload)
	crafted := header + "." + body + ".not-a-signature"

	_, err = fx.verifier.VerifyIdentityToken(context.Background(), crafted)
	assert.Error(t, err)
}

func TestVerifier_RejectsTokenSignedByWrongKey(t *testing.T) {
	fx := newVerifierFixtures(t)

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	_, err = fx.verifier.VerifyIdentityToken(context.Background(),
		signedToken(t, otherKey, testKeyID, validClaims()))
	assert.Error(t, err)
}

func TestVerifier_RejectsUnknownKeyID(t *testing.T) {
	fx := newVerifierFixtures(t)

	_, err := fx.verifier.VerifyIdentityToken(context.Background(),
		signedToken(t, fx.key, "rotated-away", validClaims()))
	assert.Error(t, err)
}

func TestVerifier_RejectsAlgorithmNone(t *testing.T) {
	fx := newVerifierFixtures(t)

	payload, err := json.Marshal(validClaims())
	require.NoError(t, err)

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","kid":"` + testKeyID + `"}`))
	body := base64.RawURLEncoding.EncodeToString(payload)

	_, err = fx.verifier.VerifyIdentityToken(context.Background(), header+"."+body+".")
	assert.Error(t, err)
}

func TestVerifier_RejectsBadClaims(t *testing.T) {
	fx := newVerifierFixtures(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(jwt.MapClaims)
	}{
		{"wrong issuer", func(c jwt.MapClaims) { c["iss"] = "https://evil.example.com" }},
		{"wrong audience", func(c jwt.MapClaims) { c["aud"] = "com.other.app" }},
		{"expired", func(c jwt.MapClaims) { c["exp"] = time.Now().Add(-time.Hour).Unix() }},
		{"missing expiry", func(c jwt.MapClaims) { delete(c, "exp") }},
		{"missing subject", func(c jwt.MapClaims) { delete(c, "sub") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := validClaims()
			tt.mutate(claims)

			_, err := fx.verifier.VerifyIdentityToken(ctx, signedToken(t, fx.key, testKeyID, claims))
			assert.Error(t, err)
		})
	}
}

func TestVerifier_CachesSigningKeys(t *testing.T) {
	fx := newVerifierFixtures(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := fx.verifier.VerifyIdentityToken(ctx, signedToken(t, fx.key, testKeyID, validClaims()))
		require.NoError(t, err)
	}

	assert.Equal(t, 1, fx.fetches)
}

func TestVerifier_RejectsMalformedToken(t *testing.T) {
	fx := newVerifierFixtures(t)

	_, err := fx.verifier.VerifyIdentityToken(context.Background(), "only-one-segment")
	assert.Error(t, err)
}
