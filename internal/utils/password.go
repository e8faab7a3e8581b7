package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashOwnerPassword produces the bcrypt hash a deployment stores in
// OWNER_PASSWORD_HASH.
func HashOwnerPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyOwnerPassword reports whether a login attempt matches the stored
// owner password hash.
func VerifyOwnerPassword(password, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
