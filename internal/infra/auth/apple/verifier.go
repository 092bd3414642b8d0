// Package apple implements Sign in with Apple identity token verification.
package apple

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/config"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	appleIssuer  = "https://appleid.apple.com"
	appleJWKSURL = "https://appleid.apple.com/auth/keys"

	// keyCacheTTL bounds how long fetched signing keys are reused before a
	// refetch. Apple rotates keys rarely; an unknown kid also forces a
	// refetch regardless of age.
	keyCacheTTL = 24 * time.Hour
)

// identityTokenClaims represents the claims in an Apple identity token.
type identityTokenClaims struct {
	jwt.RegisteredClaims

	Email          string `json:"email"`
	EmailVerified  any    `json:"email_verified"` // Apple sends "true" or true
	IsPrivateEmail any    `json:"is_private_email"`
}

// Verifier implements service.IdentityVerifier for Apple identity tokens.
// Tokens are verified against Apple's published RS256 signing keys.
type Verifier struct {
	bundleID string
	jwksURL  string
	httpc    *http.Client
	logger   *slog.Logger

	mu        sync.Mutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

// NewVerifier creates the Apple identity verifier.
func NewVerifier(cfg *config.Config, logger *slog.Logger) service.IdentityVerifier {
	bundleID := ""
	if cfg.Apple != nil {
		bundleID = cfg.Apple.BundleID
	}

	return &Verifier{
		bundleID: bundleID,
		jwksURL:  appleJWKSURL,
		httpc:    &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
		keys:     make(map[string]*rsa.PublicKey),
	}
}

// Provider returns the provider this verifier handles.
func (v *Verifier) Provider() entity.ProviderType {
	return entity.ProviderTypeApple
}

// VerifyIdentityToken verifies the token's RS256 signature against Apple's
// JWKS, checks issuer, audience, subject and expiry, and returns the
// verified identity.
func (v *Verifier) VerifyIdentityToken(ctx context.Context, identityToken string) (*service.ExternalIdentity, error) {
	claims := &identityTokenClaims{}

	token, err := jwt.ParseWithClaims(identityToken, claims, func(token *jwt.Token) (any, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("missing key id header")
		}

		return v.signingKey(ctx, kid)
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		v.logger.Warn("Failed to verify Apple identity token signature", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid identity token")
	}
	if !token.Valid {
		return nil, errors.New("invalid identity token")
	}

	if err := v.verifyClaims(claims); err != nil {
		v.logger.Warn("Apple identity token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "identity token verification failed")
	}

	identity := &service.ExternalIdentity{
		Subject:       claims.Subject,
		Email:         claims.Email,
		Provider:      entity.ProviderTypeApple,
		EmailVerified: truthy(claims.EmailVerified),
	}

	v.logger.Info("Apple identity token verified",
		slog.String("subject", identity.Subject))

	return identity, nil
}

func (v *Verifier) verifyClaims(claims *identityTokenClaims) error {
	if claims.Issuer != appleIssuer {
		return errors.Errorf("unexpected issuer: %s", claims.Issuer)
	}
	if v.bundleID != "" && !containsAudience(claims.Audience, v.bundleID) {
		return errors.Errorf("unexpected audience: %v", claims.Audience)
	}
	if claims.Subject == "" {
		return errors.New("missing subject claim")
	}

	return nil
}

// signingKey returns the RSA public key for kid, refreshing the cached JWKS
// when the kid is unknown or the cache has aged out.
func (v *Verifier) signingKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if key, ok := v.keys[kid]; ok && time.Since(v.fetchedAt) < keyCacheTTL {
		return key, nil
	}

	if err := v.refreshKeys(ctx); err != nil {
		return nil, err
	}

	key, ok := v.keys[kid]
	if !ok {
		return nil, errors.Errorf("no signing key for kid %q", kid)
	}

	return key, nil
}

// refreshKeys replaces the cached key set with a fresh JWKS fetch. The
// caller holds the mutex.
func (v *Verifier) refreshKeys(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build JWKS request")
	}

	resp, err := v.httpc.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to fetch Apple signing keys")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected JWKS status: %d", resp.StatusCode)
	}

	var doc struct {
		Keys []struct {
			Kty string `json:"kty"`
			Kid string `json:"kid"`
			N   string `json:"n"`
			E   string `json:"e"`
		} `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return errors.Wrap(err, "failed to decode JWKS document")
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" {
			continue
		}

		key, err := parseRSAKey(k.N, k.E)
		if err != nil {
			return errors.Wrapf(err, "failed to parse signing key %q", k.Kid)
		}
		keys[k.Kid] = key
	}
	if len(keys) == 0 {
		return errors.New("JWKS document carries no RSA keys")
	}

	v.keys = keys
	v.fetchedAt = time.Now()

	return nil
}

func parseRSAKey(modulus, exponent string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(modulus)
	if err != nil {
		return nil, errors.Wrap(err, "invalid modulus encoding")
	}

	eBytes, err := base64.RawURLEncoding.DecodeString(exponent)
	if err != nil {
		return nil, errors.Wrap(err, "invalid exponent encoding")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}

func containsAudience(audience jwt.ClaimStrings, want string) bool {
	for _, aud := range audience {
		if aud == want {
			return true
		}
	}

	return false
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true"
	default:
		return false
	}
}
