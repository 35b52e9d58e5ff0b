package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt hash of pw. A fresh salt is generated
// on every call, so hashing the same password twice yields different blobs.
func HashPassword(pw string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
}

// CheckPassword reports whether candidate matches the stored hash. A malformed
// stored value is treated as "no match", never as an error.
func CheckPassword(stored []byte, candidate string) bool {
	return bcrypt.CompareHashAndPassword(stored, []byte(candidate)) == nil
}

// Input rules enforced by the registration and profile forms. The repositories
// themselves accept any string; these are advisory for the presentation layer.

func ValidUsername(username string) bool {
	return len(username) >= 3 && len(username) <= 30 && !strings.Contains(username, " ")
}

func ValidEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

func ValidPassword(password string) bool {
	return len(password) >= 8
}
