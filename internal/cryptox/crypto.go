// Package cryptox hashes and verifies account passwords.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the per-user salt length in bytes.
const SaltSize = 16

// argon2id parameters.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// NewSalt returns a fresh random salt.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPassword derives the stored verifier for password with salt (argon2id).
func HashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// VerifyPassword reports whether password hashes to hash under salt.
// The comparison is constant time.
func VerifyPassword(password, salt, hash []byte) bool {
	candidate := HashPassword(password, salt)
	defer common.WipeByteArray(candidate)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}
