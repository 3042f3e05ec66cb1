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

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

var (
	// ErrOpen is returned when a sealed token cannot be authenticated.
	ErrOpen = errors.New("cannot open sealed token")
	// ErrEmptyPassphrase is returned when no passphrase is supplied.
	ErrEmptyPassphrase = errors.New("empty passphrase")
)

// tokenSealer is the private implementation of [TokenSealer].
type tokenSealer struct {
	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewTokenSealer constructs a [TokenSealer] with the Argon2id parameters
// recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (AES-256)
func NewTokenSealer() TokenSealer {
	return &tokenSealer{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
	}
}

func (k *tokenSealer) deriveKEK(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, k.argonTime, k.argonMemory, k.argonThreads, k.argonKeyLen)
}

func (k *tokenSealer) gcm(passphrase string, salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(k.deriveKEK(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Seal implements [TokenSealer].
func (k *tokenSealer) Seal(token, username, passphrase string) ([]byte, []byte, error) {
	if passphrase == "" {
		return nil, nil, ErrEmptyPassphrase
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, nil, fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := k.gcm(passphrase, salt)
	if err != nil {
		return nil, nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	// nonce || ciphertext
	sealed := gcm.Seal(nonce, nonce, []byte(token), []byte(username))
	return sealed, salt, nil
}

// Open implements [TokenSealer].
func (k *tokenSealer) Open(sealed, salt []byte, username, passphrase string) (string, error) {
	if passphrase == "" {
		return "", ErrEmptyPassphrase
	}

	gcm, err := k.gcm(passphrase, salt)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(sealed) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrOpen)
	}
	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]

	token, err := gcm.Open(nil, nonce, ciphertext, []byte(username))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpen, err)
	}
	return string(token), nil
}
