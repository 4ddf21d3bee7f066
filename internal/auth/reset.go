package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// resetTokenTTL is how long a password reset link stays valid.
const resetTokenTTL = time.Hour

// GenerateResetToken returns the raw secret handed to the user exactly once,
// the digest persisted in its place, and the expiry. The raw secret never
// touches the database.
func GenerateResetToken() (raw string, digest string, expires time.Time, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", time.Time{}, err
	}
	raw = hex.EncodeToString(buf)
	return raw, HashResetToken(raw), time.Now().Add(resetTokenTTL), nil
}

// HashResetToken is the deterministic digest stored in place of the raw
// secret; it doubles as the lookup key when the secret comes back.
func HashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
