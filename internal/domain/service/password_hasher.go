// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for salted password digest computation
// and verification. This abstracts the underlying keyed-hash algorithm,
// keeping the domain pure.
type PasswordHasher interface {
	// Generate produces a fresh cryptographically random salt and the digest
	// of the password keyed by that salt. Digest and salt are always created
	// as a pair; the salt is never reused across principals.
	Generate(password string) (digest, salt []byte, err error)

	// Verify recomputes the digest of the password under the given salt and
	// compares it with the stored digest in constant time.
	Verify(password string, digest, salt []byte) bool
}
