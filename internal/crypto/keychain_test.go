package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if len(s2) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s2))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewLightKeyChainService()

	secret := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := svc.DeriveKey(secret, salt)
	k2 := svc.DeriveKey(secret, salt)

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same secret+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	svc := NewLightKeyChainService()

	k1 := svc.DeriveKey("pw", bytes.Repeat([]byte{0x01}, 16))
	k2 := svc.DeriveKey("pw", bytes.Repeat([]byte{0x02}, 16))

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestDeriveKey_DefaultParams(t *testing.T) {
	svc := NewKeyChainService()

	key := svc.DeriveKey("pw", bytes.Repeat([]byte{0x03}, 16))
	if len(key) != 32 {
		t.Fatalf("key length = %d, want 32", len(key))
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	svc := NewLightKeyChainService()
	key := svc.DeriveKey("pw", bytes.Repeat([]byte{0x04}, 16))
	plaintext := []byte(`{"id":1,"name":"Admin"}`)

	blob, err := svc.Seal(plaintext, key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if bytes.Contains(blob, plaintext) {
		t.Fatalf("blob contains plaintext")
	}

	got, err := svc.Open(blob, key)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("Open = %q, want %q", got, plaintext)
	}
}

func TestSeal_NonceRandomness(t *testing.T) {
	svc := NewLightKeyChainService()
	key := bytes.Repeat([]byte{0x05}, 32)

	b1, err := svc.Seal([]byte("token"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b2, err := svc.Seal([]byte("token"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if bytes.Equal(b1[:12], b2[:12]) {
		t.Fatalf("expected different nonces")
	}
}

func TestOpen_WrongKey(t *testing.T) {
	svc := NewLightKeyChainService()

	blob, err := svc.Seal([]byte("token"), bytes.Repeat([]byte{0x06}, 32))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	_, err = svc.Open(blob, bytes.Repeat([]byte{0x07}, 32))
	if !errors.Is(err, ErrDecryption) {
		t.Fatalf("Open error = %v, want ErrDecryption", err)
	}
}

func TestOpen_TooShort(t *testing.T) {
	svc := NewLightKeyChainService()

	_, err := svc.Open([]byte{1, 2, 3}, bytes.Repeat([]byte{0x08}, 32))
	if !errors.Is(err, ErrCiphertextTooShort) {
		t.Fatalf("Open error = %v, want ErrCiphertextTooShort", err)
	}
}

func TestSeal_InvalidKeyLength(t *testing.T) {
	svc := NewLightKeyChainService()

	if _, err := svc.Seal([]byte("x"), []byte("short")); err == nil {
		t.Fatalf("expected error for invalid key length")
	}
}

func TestDeviceSecret_Stable(t *testing.T) {
	s1 := DeviceSecret()
	s2 := DeviceSecret()

	if s1 != s2 {
		t.Fatalf("DeviceSecret not stable: %q vs %q", s1, s2)
	}
	if !strings.HasPrefix(s1, "sparknest:") {
		t.Fatalf("DeviceSecret = %q, want sparknest: prefix", s1)
	}
}
