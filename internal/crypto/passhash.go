// Package crypto implements server-side password hashing and verification.
package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// Cost bounds accepted by HashPassword.
const (
	MinCost     = bcrypt.MinCost
	MaxCost     = bcrypt.MaxCost
	DefaultCost = bcrypt.DefaultCost
)

// MaxPasswordLen is the longest password bcrypt hashes without truncation.
const MaxPasswordLen = 72

// ErrPasswordTooLong is returned for passwords longer than bcrypt accepts (72 bytes).
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// HashPassword returns a bcrypt hash of password with a fresh random salt.
// A cost outside [MinCost, MaxCost] falls back to DefaultCost.
func HashPassword(password string, cost int) ([]byte, error) {
	if cost < MinCost || cost > MaxCost {
		cost = DefaultCost
	}
	return bcrypt.GenerateFromPassword([]byte(password), cost)
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// The comparison is constant-time. Passwords over MaxPasswordLen never match,
// since bcrypt would only look at their first 72 bytes.
func VerifyPassword(hash []byte, password string) bool {
	if len(password) > MaxPasswordLen {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
