package user

import (
	"github.com/akshayfox/admin-dashboard/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher returns a bcrypt hasher with the given cost, usable for
// seeding the store.
func PasswordHasher(cost int) store.PasswordHasher {
	return func(plain string) (string, error) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
		if err != nil {
			return "", err
		}
		return string(hashed), nil
	}
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
