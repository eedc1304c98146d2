package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// VerifierConfig holds JWT verification settings. Exactly one of Secret and
// PublicKeyPEM selects the algorithm: HS256 for a shared secret, RS256 for a public key.
type VerifierConfig struct {
	Secret       string
	PublicKeyPEM string
	Issuer       string
}

// Enabled reports whether any verification key is configured.
func (c VerifierConfig) Enabled() bool {
	return c.Secret != "" || c.PublicKeyPEM != ""
}

// Verifier validates bearer tokens.
type Verifier struct {
	key    any
	method jwt.SigningMethod
	secret []byte
	issuer string
}

// NewVerifier creates a Verifier from cfg.
func NewVerifier(cfg VerifierConfig) (*Verifier, error) {
	v := &Verifier{issuer: cfg.Issuer}

	switch {
	case cfg.Secret != "" && cfg.PublicKeyPEM != "":
		return nil, errors.New("auth: configure either a secret or a public key, not both")
	case cfg.PublicKeyPEM != "":
		pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("auth: parse RSA public key: %w", err)
		}
		v.key = pub
		v.method = jwt.SigningMethodRS256
	case cfg.Secret != "":
		v.secret = []byte(cfg.Secret)
		v.key = v.secret
		v.method = jwt.SigningMethodHS256
	default:
		return nil, errors.New("auth: a secret or a public key is required")
	}

	return v, nil
}

// Verify parses and validates a token string.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{v.method.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return v.key, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("auth: invalid token: %w", err)
	}
	return claims, nil
}

// Issue signs a token for subject with the given scopes. Only verifiers configured
// with a shared secret can issue tokens.
func (v *Verifier) Issue(subject string, scopes []string, ttl time.Duration) (string, error) {
	if v.secret == nil {
		return "", errors.New("auth: cannot issue tokens without a shared secret")
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Scopes: scopes,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// LoadKeyFromFile reads a PEM-encoded key from a file path.
func LoadKeyFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("auth: read key file %q: %w", path, err)
	}
	return string(data), nil
}
