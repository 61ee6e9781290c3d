// Package crypto 提供存储层字段加密与密钥指纹功能
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	keyLen     = 32 // AES-256
	kdfRounds  = 100000
	gcmTagSize = 16
)

var (
	// ErrMalformedCiphertext 密文格式不是 iv:tag:cipher 三段十六进制
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
	// ErrDecryptFailed 认证失败或密文被篡改
	ErrDecryptFailed = errors.New("decrypt failed")
)

// FieldCipher 字段级 AES-256-GCM 加密器。
// 密钥由配置的 secret 经 PBKDF2 派生，每次加密使用随机 IV。
type FieldCipher struct {
	key []byte
}

// NewFieldCipher 创建字段加密器
func NewFieldCipher(secret, salt string) (*FieldCipher, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("encryption secret is empty")
	}
	if salt == "" {
		return nil, errors.New("encryption salt is empty")
	}
	key := pbkdf2.Key([]byte(secret), []byte(salt), kdfRounds, keyLen, sha256.New)
	return &FieldCipher{key: key}, nil
}

// Encrypt 加密明文，返回 ivHex:authTagHex:cipherHex
func (c *FieldCipher) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate iv: %w", err)
	}

	// Seal 输出为 cipher||tag，按线上格式拆成三段
	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	if len(sealed) < gcmTagSize {
		return "", errors.New("sealed output too short")
	}
	ct := sealed[:len(sealed)-gcmTagSize]
	tag := sealed[len(sealed)-gcmTagSize:]

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(tag) + ":" + hex.EncodeToString(ct), nil
}

// Decrypt 解密 ivHex:authTagHex:cipherHex 格式的密文。
// 段数错误、十六进制非法或认证失败都会返回错误，绝不返回错误明文。
func (c *FieldCipher) Decrypt(encoded string) (string, error) {
	parts := strings.Split(encoded, ":")
	if len(parts) != 3 {
		return "", ErrMalformedCiphertext
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", ErrMalformedCiphertext
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil {
		return "", ErrMalformedCiphertext
	}
	ct, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", ErrMalformedCiphertext
	}
	if len(tag) != gcmTagSize {
		return "", ErrMalformedCiphertext
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	if len(iv) != gcm.NonceSize() {
		return "", ErrMalformedCiphertext
	}

	sealed := append(append([]byte{}, ct...), tag...)
	plain, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", ErrDecryptFailed
	}
	return string(plain), nil
}

// Fingerprint 返回明文密钥的 SHA-256 十六进制指纹，仅用于展示识别
func Fingerprint(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
