package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost only affects newly hashed passwords; stored digests embed their
// own cost and keep verifying after a change.
const bcryptCost = 10

func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
