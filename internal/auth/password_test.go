package auth

import "testing"

func TestHashPasswordRoundTrip(t *testing.T) {
	const password = "secret1"

	hashed, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == password {
		t.Fatal("hash equals the plaintext password")
	}

	if !CheckPassword(password, hashed) {
		t.Error("expected CheckPassword to accept the original password")
	}
	if CheckPassword("secret2", hashed) {
		t.Error("expected CheckPassword to reject a different password")
	}
}

// TestHashPasswordSalted verifies that hashing the same password twice gives
// two different digests (per-call salt) that both still verify.
func TestHashPasswordSalted(t *testing.T) {
	const password = "same-password"

	first, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
	if !CheckPassword(password, first) || !CheckPassword(password, second) {
		t.Error("expected both hashes to verify")
	}
}

func TestCheckPasswordGarbageDigest(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-digest") {
		t.Error("expected CheckPassword to reject a malformed digest")
	}
}
