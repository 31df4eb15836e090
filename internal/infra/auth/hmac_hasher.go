// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"

	"github.com/pkg/errors"

	"backoffice/internal/domain/service"
)

// SaltLength is the byte length of generated salts. It matches the block-size
// keying convention of HMAC-SHA512, so DigestLength equals the hash output.
const (
	SaltLength   = sha512.Size
	DigestLength = sha512.Size
)

// hmacHasher is a concrete implementation of the PasswordHasher interface
// using HMAC-SHA512 keyed by a per-password random salt.
type hmacHasher struct{}

// NewHMACHasher is the constructor for hmacHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewHMACHasher() service.PasswordHasher {
	return &hmacHasher{}
}

// Generate produces a fresh random salt and the HMAC-SHA512 digest of the
// password keyed by that salt. The salt comes from crypto/rand; a failed
// read is an error, never a weaker fallback.
func (h *hmacHasher) Generate(password string) (digest, salt []byte, err error) {
	salt = make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate password salt")
	}

	return computeDigest(password, salt), salt, nil
}

// Verify recomputes the digest under the stored salt and compares with
// hmac.Equal. The comparison is constant time with respect to the digest,
// so response timing leaks nothing about the stored value.
func (h *hmacHasher) Verify(password string, digest, salt []byte) bool {
	if len(digest) == 0 || len(salt) == 0 {
		return false
	}

	return hmac.Equal(computeDigest(password, salt), digest)
}

func computeDigest(password string, salt []byte) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))

	return mac.Sum(nil)
}
