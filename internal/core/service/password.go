package service

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash of plain. The cost makes verification
// deliberately slow; two hashes of the same password never compare equal.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches hash. Malformed hashes read as
// a failed verification, never an error.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
