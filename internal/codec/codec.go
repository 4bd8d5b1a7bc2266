// Package codec provides the hex and base64 transport encodings and byte-block helpers
// shared by the hash and cipher operations.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	apperrors "github.com/allisson/cryptokaro/internal/errors"
)

// EncodeHex returns the lowercase hexadecimal form of b.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeHex decodes s as hexadecimal. The field name is used in the error message.
// Returns ErrInvalidEncoding for odd-length input or non-hex characters.
func DecodeHex(field, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrInvalidEncoding, "'%s' is not valid hex", field)
	}
	return b, nil
}

// EncodeBase64 returns the standard, padded base64 form of b without line breaks.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64 decodes s as standard padded base64.
// Returns ErrInvalidEncoding if s is not valid base64.
func DecodeBase64(field, s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrInvalidEncoding, "'%s' is not valid base64", field)
	}
	return b, nil
}

// DecodeKey decodes hex key material and requires exactly size bytes.
// The key is never truncated or padded to fit.
func DecodeKey(field, s string, size int) ([]byte, error) {
	key, err := DecodeHex(field, s)
	if err != nil {
		return nil, err
	}
	if len(key) != size {
		return nil, apperrors.Newf(
			apperrors.ErrInvalidKeyLength,
			"'%s' must decode to exactly %d bytes, got %d",
			field,
			size,
			len(key),
		)
	}
	return key, nil
}

// NewBlock allocates a zeroed block of n bytes.
func NewBlock(n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	return make([]byte, n)
}

// ReadBlock fills a new block of n bytes from r.
// A short read is an error; the partially filled block is never returned.
func ReadBlock(r io.Reader, n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("block size must be positive, got %d", n)
	}
	b := NewBlock(n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("failed to read %d random bytes: %w", n, err)
	}
	return b, nil
}
