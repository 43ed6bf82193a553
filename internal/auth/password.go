// Package auth provides credential hashing and verification.
package auth

import "golang.org/x/crypto/bcrypt"

// Hash returns a bcrypt hash of the plaintext secret. The salt is
// randomized per call, so repeated calls on the same input produce
// different hash strings that all verify.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext secret matches the stored hash
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
