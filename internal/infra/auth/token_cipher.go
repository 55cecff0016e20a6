package auth

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"strings"

	"studio/config"
	"studio/internal/domain/service"
	"studio/internal/errors"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	sealedPrefix = "enc:v1:"
	keySize      = 32
	nonceSize    = 24
)

// NewTokenCipher returns a secretbox cipher when a key is configured and a passthrough otherwise.
func NewTokenCipher(cfg *config.Config) (service.TokenCipher, error) {
	if cfg.TokenEncryption == nil || cfg.TokenEncryption.Key == "" {
		return plainCipher{}, nil
	}

	raw, err := base64.StdEncoding.DecodeString(cfg.TokenEncryption.Key)
	if err != nil {
		return nil, errors.Wrap(err, "decode token encryption key")
	}
	if len(raw) != keySize {
		return nil, errors.Errorf("token encryption key must be %d bytes, got %d", keySize, len(raw))
	}

	var key [keySize]byte
	copy(key[:], raw)

	return &secretboxCipher{key: key}, nil
}

type secretboxCipher struct {
	key [keySize]byte
}

// Seal encrypts plaintext into "enc:v1:<base64(nonce|box)>". Empty input stays empty.
func (c *secretboxCipher) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", errors.Wrap(err, "read nonce")
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &c.key)

	return sealedPrefix + base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open decrypts sealed values and returns unprefixed values unchanged.
func (c *secretboxCipher) Open(stored string) (string, error) {
	if !strings.HasPrefix(stored, sealedPrefix) {
		return stored, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(stored, sealedPrefix))
	if err != nil {
		return "", errors.Wrap(err, "decode sealed token")
	}
	if len(raw) < nonceSize+secretbox.Overhead {
		return "", errors.New("sealed token too short")
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &c.key)
	if !ok {
		return "", errors.New("sealed token authentication failed")
	}

	return string(plain), nil
}

type plainCipher struct{}

func (plainCipher) Seal(plaintext string) (string, error) { return plaintext, nil }

func (plainCipher) Open(stored string) (string, error) { return stored, nil }
