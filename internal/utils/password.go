package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinPINLength is the shortest operator PIN accepted for hashing.
const MinPINLength = 4

var ErrPINTooShort = errors.New("pin is too short")

// HashPIN hashes an operator PIN using bcrypt.
func HashPIN(pin string) (string, error) {
	if len(pin) < MinPINLength {
		return "", ErrPINTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPINHash compares a plaintext PIN with a bcrypt hash.
func CheckPINHash(pin, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}
