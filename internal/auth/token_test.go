package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/HardwareHub/HH-Backend/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// setTokenConfig points the process-wide config at test values and restores
// the original on cleanup.
func setTokenConfig(t *testing.T, secret string, expire time.Duration) {
	t.Helper()
	saved := config.App
	config.App.JWTSecret = secret
	config.App.JWTExpire = expire
	t.Cleanup(func() { config.App = saved })
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	setTokenConfig(t, "test-secret", time.Hour)

	raw, err := IssueToken("user-123", "ann@x.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := VerifyToken(raw)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("expected UserID %q, got %q", "user-123", claims.UserID)
	}
	if claims.Email != "ann@x.com" {
		t.Errorf("expected Email %q, got %q", "ann@x.com", claims.Email)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	setTokenConfig(t, "test-secret", -time.Minute)

	raw, err := IssueToken("user-123", "ann@x.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := VerifyToken(raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	setTokenConfig(t, "test-secret", time.Hour)
	raw, err := IssueToken("user-123", "ann@x.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	config.App.JWTSecret = "rotated-secret"
	if _, err := VerifyToken(raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken after secret rotation, got %v", err)
	}
}

func TestVerifyWrongSigningMethod(t *testing.T) {
	setTokenConfig(t, "test-secret", time.Hour)

	// An unsigned token must never verify, even with valid claims.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, TokenClaims{
		UserID: "user-123",
		Email:  "ann@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := VerifyToken(raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for unsigned token, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	setTokenConfig(t, "test-secret", time.Hour)

	if _, err := VerifyToken("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for garbage input, got %v", err)
	}
}
