package service

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/cryptokaro/internal/crypto/domain"
)

func TestSHA256Hasher_SHA256(t *testing.T) {
	hasher := NewSHA256Hasher()

	tests := []struct {
		input  string
		digest string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"hello", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			digest := hasher.SHA256([]byte(tt.input))
			assert.Len(t, digest, cryptoDomain.DigestSize)
			assert.Equal(t, tt.digest, hex.EncodeToString(digest))
			assert.Equal(t, digest, hasher.SHA256([]byte(tt.input)))
		})
	}
}

func TestSHA256Hasher_HMACSHA256(t *testing.T) {
	hasher := NewSHA256Hasher()

	// RFC 4231 test cases 1, 2 and 6.
	tests := []struct {
		name string
		key  []byte
		data string
		mac  string
	}{
		{
			name: "case 1",
			key:  bytes.Repeat([]byte{0x0b}, 20),
			data: "Hi There",
			mac:  "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
		},
		{
			name: "case 2 short key",
			key:  []byte("Jefe"),
			data: "what do ya want for nothing?",
			mac:  "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		},
		{
			name: "case 6 key longer than block",
			key:  bytes.Repeat([]byte{0xaa}, 131),
			data: "Test Using Larger Than Block-Size Key - Hash Key First",
			mac:  "60e431591ee0b67f0d8a26aacbf5b77f8e0bc6213728c5140546040f0ee37f54",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mac, err := hasher.HMACSHA256(tt.key, []byte(tt.data))
			require.NoError(t, err)
			assert.Len(t, mac, cryptoDomain.DigestSize)
			assert.Equal(t, tt.mac, hex.EncodeToString(mac))

			again, err := hasher.HMACSHA256(tt.key, []byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, mac, again)
		})
	}

	t.Run("single byte key", func(t *testing.T) {
		_, err := hasher.HMACSHA256([]byte{0x01}, []byte("data"))
		assert.NoError(t, err)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := hasher.HMACSHA256(nil, []byte("data"))
		assert.ErrorIs(t, err, cryptoDomain.ErrEmptyHMACKey)
	})
}
