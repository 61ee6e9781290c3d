package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T) *FieldCipher {
	t.Helper()
	c, err := NewFieldCipher("test-secret", "test-salt")
	require.NoError(t, err)
	return c
}

func TestNewFieldCipher(t *testing.T) {
	t.Run("empty secret", func(t *testing.T) {
		_, err := NewFieldCipher("", "salt")
		assert.Error(t, err)
	})

	t.Run("blank secret", func(t *testing.T) {
		_, err := NewFieldCipher("   ", "salt")
		assert.Error(t, err)
	})

	t.Run("empty salt", func(t *testing.T) {
		_, err := NewFieldCipher("secret", "")
		assert.Error(t, err)
	})
}

func TestFieldCipherRoundtrip(t *testing.T) {
	c := newTestCipher(t)

	encoded, err := c.Encrypt("sk-abc123")
	require.NoError(t, err)

	// 线上格式：iv:tag:cipher 三段十六进制
	parts := strings.Split(encoded, ":")
	require.Len(t, parts, 3)
	for _, p := range parts {
		assert.NotEmpty(t, p)
	}

	plain, err := c.Decrypt(encoded)
	require.NoError(t, err)
	assert.Equal(t, "sk-abc123", plain)
}

func TestFieldCipherRandomIV(t *testing.T) {
	c := newTestCipher(t)

	first, err := c.Encrypt("same-plaintext")
	require.NoError(t, err)
	second, err := c.Encrypt("same-plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestFieldCipherDecryptErrors(t *testing.T) {
	c := newTestCipher(t)

	encoded, err := c.Encrypt("payload")
	require.NoError(t, err)

	t.Run("tampered ciphertext", func(t *testing.T) {
		parts := strings.Split(encoded, ":")
		flipped := flipHexDigit(parts[2])
		_, err := c.Decrypt(parts[0] + ":" + parts[1] + ":" + flipped)
		assert.ErrorIs(t, err, ErrDecryptFailed)
	})

	t.Run("tampered tag", func(t *testing.T) {
		parts := strings.Split(encoded, ":")
		flipped := flipHexDigit(parts[1])
		_, err := c.Decrypt(parts[0] + ":" + flipped + ":" + parts[2])
		assert.ErrorIs(t, err, ErrDecryptFailed)
	})

	t.Run("wrong segment count", func(t *testing.T) {
		_, err := c.Decrypt("aabb:ccdd")
		assert.ErrorIs(t, err, ErrMalformedCiphertext)
	})

	t.Run("invalid hex", func(t *testing.T) {
		_, err := c.Decrypt("zz:zz:zz")
		assert.ErrorIs(t, err, ErrMalformedCiphertext)
	})

	t.Run("short tag", func(t *testing.T) {
		parts := strings.Split(encoded, ":")
		_, err := c.Decrypt(parts[0] + ":aabb:" + parts[2])
		assert.ErrorIs(t, err, ErrMalformedCiphertext)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := NewFieldCipher("another-secret", "another-salt")
		require.NoError(t, err)
		_, err = other.Decrypt(encoded)
		assert.ErrorIs(t, err, ErrDecryptFailed)
	})
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint("sk-abc123")
	assert.Len(t, fp, 64)
	assert.Equal(t, fp, Fingerprint("sk-abc123"))
	assert.NotEqual(t, fp, Fingerprint("sk-abc124"))
}

func flipHexDigit(s string) string {
	b := []byte(s)
	if b[0] == '0' {
		b[0] = '1'
	} else {
		b[0] = '0'
	}
	return string(b)
}
