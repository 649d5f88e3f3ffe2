// Package cryptox implements the credential check used at login.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// SentinelPassword is the single password accepted for every account.
const SentinelPassword = "password"

const saltSize = 32

// PasswordVerifier decides whether a candidate password is acceptable.
type PasswordVerifier interface {
	Verify(candidate string) bool
}

// SentinelVerifier accepts exactly SentinelPassword.
type SentinelVerifier struct{}

func (SentinelVerifier) Verify(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(SentinelPassword)) == 1
}

// Argon2Verifier keeps only a salted argon2id verifier of the expected
// password and checks candidates against it.
type Argon2Verifier struct {
	salt     []byte
	verifier []byte
}

// NewArgon2Verifier derives a verifier for password with a fresh random salt.
func NewArgon2Verifier(password string) (*Argon2Verifier, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return &Argon2Verifier{
		salt:     salt,
		verifier: MakeVerifier(DeriveKey([]byte(password), salt)),
	}, nil
}

func (v *Argon2Verifier) Verify(candidate string) bool {
	c := MakeVerifier(DeriveKey([]byte(candidate), v.salt))
	return subtle.ConstantTimeCompare(c, v.verifier) == 1
}

// DeriveKey stretches password with argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key so the key itself need not be kept.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}
