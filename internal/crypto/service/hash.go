package service

import (
	"crypto/hmac"
	"crypto/sha256"

	cryptoDomain "github.com/allisson/cryptokaro/internal/crypto/domain"
)

// SHA256Hasher implements Hasher with SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA-256 hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// SHA256 computes the SHA-256 digest of data.
func (h *SHA256Hasher) SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// HMACSHA256 computes HMAC-SHA256 of data. Any non-empty key length is accepted;
// keys longer than the SHA-256 block are hashed first as HMAC requires.
func (h *SHA256Hasher) HMACSHA256(key, data []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, cryptoDomain.ErrEmptyHMACKey
	}
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil), nil
}
