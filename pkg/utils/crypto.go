package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	gcmNonceLength = 12
	aesKeyLength   = 32
)

// Key derivation salt is fixed: the vault offers obfuscation, not real
// confidentiality, since the passphrase ships with the deployment.
var vaultKDFSalt = []byte("wander-vault-v1")

var ErrInvalidCiphertext = errors.New("invalid ciphertext format")

// VaultCipher encrypts and decrypts vault blobs with AES-256-GCM under a
// key derived from a static passphrase. The wire format is
// "hexNonce:hexTag:hexCiphertext".
type VaultCipher struct {
	key []byte
}

func NewVaultCipher(passphrase string) (*VaultCipher, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("vault passphrase cannot be empty")
	}
	key, err := scrypt.Key([]byte(passphrase), vaultKDFSalt, 1<<15, 8, 1, aesKeyLength)
	if err != nil {
		return nil, fmt.Errorf("derive vault key: %w", err)
	}
	return &VaultCipher{key: key}, nil
}

func (v *VaultCipher) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(v.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithNonceSize(block, gcmNonceLength)
}

func (v *VaultCipher) Encrypt(plaintext string) (string, error) {
	aead, err := v.aead()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcmNonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := aead.Seal(nil, nonce, []byte(plaintext), nil)
	tagAt := len(sealed) - aead.Overhead()

	return fmt.Sprintf("%s:%s:%s",
		hex.EncodeToString(nonce),
		hex.EncodeToString(sealed[tagAt:]),
		hex.EncodeToString(sealed[:tagAt]),
	), nil
}

func (v *VaultCipher) Decrypt(encrypted string) (string, error) {
	parts := strings.Split(encrypted, ":")
	if len(parts) != 3 {
		return "", ErrInvalidCiphertext
	}

	nonce, err := hex.DecodeString(parts[0])
	if err != nil || len(nonce) != gcmNonceLength {
		return "", ErrInvalidCiphertext
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	content, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", ErrInvalidCiphertext
	}

	aead, err := v.aead()
	if err != nil {
		return "", err
	}

	plaintext, err := aead.Open(nil, nonce, append(content, tag...), nil)
	if err != nil {
		return "", fmt.Errorf("decrypt vault blob: %w", err)
	}
	return string(plaintext), nil
}
