// Package cryptox implements the password hashing scheme of the credential
// store: an unsalted, unkeyed SHA-256 digest encoded as lowercase hex.
//
// The scheme performs no key stretching and uses no per-user salt, so two
// users with the same password share a digest. This is acceptable here only
// because lookup is by username, never by hash, and because the store is a
// demo artifact. Do not use this package to protect real credentials.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashLength is the length, in hex characters, of a HashPassword result.
const HashLength = sha256.Size * 2

// HashPassword returns the lowercase hex-encoded SHA-256 digest of the UTF-8
// bytes of password. The result is always HashLength characters.
//
// Identical inputs yield identical digests; the empty string hashes like any
// other value. The function has no side effects.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
