// Package jwt issues and validates the HS256 bearer tokens used for sessions.
package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiration is the lifetime of every issued token.
const DefaultExpiration = 30 * time.Minute

// Validation errors. Callers treat all of them as "unauthenticated".
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
)

var (
	errUnsignedToken       = errors.New("unsigned token")
	errUnexpectedAlgorithm = errors.New("unexpected signing method")
)

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	secretKey []byte           // Secret key for signing tokens
	exp       time.Duration    // Token expiration duration
	now       func() time.Time // Clock used for issuing and validating
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing secret.
func WithSecretKey(secretKey string) Opt {
	return func(j *JWT) {
		j.secretKey = []byte(secretKey)
	}
}

// WithExpiration overrides DefaultExpiration.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.exp = exp
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Opt {
	return func(j *JWT) {
		j.now = now
	}
}

// New creates a new JWT instance
func New(opts ...Opt) *JWT {
	j := &JWT{
		exp: DefaultExpiration,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Issue creates a signed token carrying subject and an expiry of now + exp.
func (j *JWT) Issue(ctx context.Context, subject string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(j.now().Add(j.exp)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Validate checks signature, algorithm and expiry and returns the token subject.
// The returned error wraps ErrTokenMalformed, ErrTokenExpired or ErrTokenSignatureInvalid.
func (j *JWT) Validate(ctx context.Context, tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, j.keyFunc,
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return "", classify(err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: subject claim missing", ErrTokenMalformed)
	}

	return claims.Subject, nil
}

func (j *JWT) keyFunc(token *jwt.Token) (interface{}, error) {
	switch token.Method.Alg() {
	case jwt.SigningMethodHS256.Alg():
		return j.secretKey, nil
	case "none":
		return nil, errUnsignedToken
	default:
		return nil, fmt.Errorf("%w: %s", errUnexpectedAlgorithm, token.Method.Alg())
	}
}

func classify(err error) error {
	switch {
	case errors.Is(err, errUnexpectedAlgorithm), errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrTokenSignatureInvalid, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
