// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrCiphertextTooShort is returned by Open for blobs shorter than a nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	// ErrDecryption is returned by Open when authentication fails.
	ErrDecryption = errors.New("decryption failed")
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// NewLightKeyChainService uses an 8 MiB Argon2id memory cost. Meant for
// tests and constrained devices.
func NewLightKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  8 * 1024,
		argonThreads: 1,
		argonKeyLen:  32,
	}
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey implements [KeyChainService].
func (k *keyChainService) DeriveKey(secret string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(secret),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// Seal implements [KeyChainService]. A random 12-byte nonce is prepended to
// the ciphertext: blob = nonce ‖ ciphertext.
func (k *keyChainService) Seal(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open implements [KeyChainService].
func (k *keyChainService) Open(blob, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// DeviceSecret returns a secret bound to the current OS user and host. It
// is used when no storage secret is configured, so the session file is not
// readable when copied to another machine or account.
func DeviceSecret() string {
	username := "unknown"
	if u, err := user.Current(); err == nil {
		username = u.Username + ":" + u.Uid
	}
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}
	return "sparknest:" + username + "@" + host
}
