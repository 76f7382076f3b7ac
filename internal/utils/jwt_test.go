package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "123", time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		t.Fatalf("could not parse generated token: %v", err)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "1", time.Hour, "key"},
		{"empty subject", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "1", 0, "key"},
		{"empty key", "iss", "1", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	token, _ := GenerateJWTToken("test-issuer", "456", 5*time.Minute, "secret-key")

	subject, err := ValidateAndParseJWTToken(token, "secret-key", "test-issuer")

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if subject != "456" {
		t.Errorf("expected subject 456, got %s", subject)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	token, _ := GenerateJWTToken("test-issuer", "1", time.Hour, "correct-key")

	if _, err := ValidateAndParseJWTToken(token, "wrong-key", "test-issuer"); err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	// Token that expired 1 second ago
	token, _ := GenerateJWTToken("test-issuer", "1", -time.Second, "key")

	_, err := ValidateAndParseJWTToken(token, "key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, _ := GenerateJWTToken("real-issuer", "1", time.Hour, "key")

	if _, err := ValidateAndParseJWTToken(token, "key", "fake-issuer"); err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.token", "key", "iss"); err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc", "abc", false},
		{"bearer abc", "abc", false},
		{"  Bearer   abc  ", "abc", false},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"", "", true},
		{"Bearer a b", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidAuthorizationHeader) {
				t.Errorf("%q: expected ErrInvalidAuthorizationHeader, got %v", tt.header, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%q: expected %q, got %q (%v)", tt.header, tt.want, got, err)
		}
	}
}

func TestTokenExpiry(t *testing.T) {
	token, _ := GenerateJWTToken("iss", "1", time.Hour, "key")

	exp, err := TokenExpiry(token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d := time.Until(exp); d < 59*time.Minute || d > time.Hour {
		t.Errorf("unexpected expiry %v", exp)
	}
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	if _, err := TokenExpiry("opaque-session-token"); !errors.Is(err, ErrNoExpiry) {
		t.Errorf("expected ErrNoExpiry, got %v", err)
	}
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"}).SignedString([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := TokenExpiry(token); !errors.Is(err, ErrNoExpiry) {
		t.Errorf("expected ErrNoExpiry, got %v", err)
	}
}
