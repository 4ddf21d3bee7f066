package auth

import (
	"testing"
	"time"
)

func TestGenerateResetToken(t *testing.T) {
	raw, digest, expires, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken: %v", err)
	}

	// 32 random bytes hex-encoded.
	if len(raw) != 64 {
		t.Errorf("expected 64-char raw secret, got %d chars", len(raw))
	}
	if len(digest) != 64 {
		t.Errorf("expected 64-char sha256 digest, got %d chars", len(digest))
	}
	if raw == digest {
		t.Error("raw secret and stored digest must differ")
	}

	remaining := time.Until(expires)
	if remaining < 59*time.Minute || remaining > 61*time.Minute {
		t.Errorf("expected expiry ~1h out, got %s", remaining)
	}
}

func TestHashResetTokenDeterministic(t *testing.T) {
	raw, digest, _, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken: %v", err)
	}

	if HashResetToken(raw) != digest {
		t.Error("re-hashing the raw secret should reproduce the stored digest")
	}
	if HashResetToken(raw+"x") == digest {
		t.Error("a different secret should not reproduce the digest")
	}
}

func TestGenerateResetTokenUnique(t *testing.T) {
	first, _, _, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken: %v", err)
	}
	second, _, _, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken: %v", err)
	}

	if first == second {
		t.Error("expected two generated secrets to differ")
	}
}
