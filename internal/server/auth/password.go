// Package auth implements the two credential primitives of the server:
// bcrypt password hashing and HS256 JWT access tokens.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt digest from the plaintext password.
// The default cost keeps a single verification in the tens of milliseconds.
func HashPassword(password []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
}

// CheckPassword reports whether the plaintext password matches the digest.
// A mismatch is a normal outcome, not an error.
func CheckPassword(hash, password []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, password) == nil
}
