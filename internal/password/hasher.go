// Package password hashes and verifies user credentials with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxLength is the longest plaintext bcrypt accepts.
const MaxLength = 72

// ErrPasswordTooLong is returned by Hash for plaintexts over MaxLength bytes.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// Hasher produces salted bcrypt digests with a fixed work factor.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher. Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Cost returns the work factor used for new digests.
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash returns a bcrypt digest of plaintext. Every call uses a fresh random salt.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > MaxLength {
		return "", ErrPasswordTooLong
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether plaintext matches digest.
// A malformed digest never matches, and neither does a plaintext over MaxLength:
// bcrypt only compares the first MaxLength bytes.
func (h *Hasher) Verify(plaintext, digest string) bool {
	if len(plaintext) > MaxLength {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
