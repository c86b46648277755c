package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultCipher_RoundTrip(t *testing.T) {
	cipher, err := NewVaultCipher("test-passphrase")
	require.NoError(t, err)

	tests := []string{
		`[{"id":"abc","createdAt":123}]`,
		"",
		"plain text with unicode: ₹3000 café",
	}

	for _, plaintext := range tests {
		encrypted, err := cipher.Encrypt(plaintext)
		require.NoError(t, err)

		parts := strings.Split(encrypted, ":")
		require.Len(t, parts, 3, "wire format is nonce:tag:ciphertext")

		decrypted, err := cipher.Decrypt(encrypted)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestVaultCipher_NoncesDiffer(t *testing.T) {
	cipher, err := NewVaultCipher("test-passphrase")
	require.NoError(t, err)

	first, err := cipher.Encrypt("same payload")
	require.NoError(t, err)
	second, err := cipher.Encrypt("same payload")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVaultCipher_RejectsTamperedCiphertext(t *testing.T) {
	cipher, err := NewVaultCipher("test-passphrase")
	require.NoError(t, err)

	encrypted, err := cipher.Encrypt("secret")
	require.NoError(t, err)

	parts := strings.Split(encrypted, ":")
	flipped := parts[0] + ":" + parts[1] + ":" + flipFirstHexDigit(parts[2])

	_, err = cipher.Decrypt(flipped)
	assert.Error(t, err)
}

func TestVaultCipher_RejectsBadFormat(t *testing.T) {
	cipher, err := NewVaultCipher("test-passphrase")
	require.NoError(t, err)

	for _, input := range []string{"", "not encrypted", "aa:bb", "zz:zz:zz"} {
		_, err := cipher.Decrypt(input)
		assert.ErrorIs(t, err, ErrInvalidCiphertext, "input %q", input)
	}
}

func TestVaultCipher_WrongPassphraseFails(t *testing.T) {
	first, err := NewVaultCipher("passphrase-one")
	require.NoError(t, err)
	second, err := NewVaultCipher("passphrase-two")
	require.NoError(t, err)

	encrypted, err := first.Encrypt("secret")
	require.NoError(t, err)

	_, err = second.Decrypt(encrypted)
	assert.Error(t, err)
}

func TestNewVaultCipher_EmptyPassphrase(t *testing.T) {
	_, err := NewVaultCipher("")
	assert.Error(t, err)
}

func flipFirstHexDigit(s string) string {
	if s == "" {
		return s
	}
	replacement := "0"
	if s[0] == '0' {
		replacement = "1"
	}
	return replacement + s[1:]
}
