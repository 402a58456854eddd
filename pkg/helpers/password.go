package helpers

import "golang.org/x/crypto/bcrypt"

// bcryptCost is pinned rather than relying on the library default so a
// library upgrade can never silently change hashing strength.
const bcryptCost = 10

// HashPassword produces a bcrypt hash of the plain password. Hashing happens
// only here and its callers; repositories store whatever they are given.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CompareHashAndPassword reports whether plain matches the stored hash.
func CompareHashAndPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
