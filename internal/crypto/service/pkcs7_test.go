package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPKCS7Pad(t *testing.T) {
	assert.Equal(t, bytes.Repeat([]byte{16}, 16), pkcs7Pad(nil, 16))
	assert.Equal(t, append([]byte("abc"), bytes.Repeat([]byte{13}, 13)...), pkcs7Pad([]byte("abc"), 16))

	aligned := bytes.Repeat([]byte{'x'}, 32)
	padded := pkcs7Pad(aligned, 16)
	assert.Len(t, padded, 48)
	assert.Equal(t, bytes.Repeat([]byte{16}, 16), padded[32:])
}

func TestPKCS7Unpad(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    []byte
		wantErr bool
	}{
		{
			name:  "full padding block",
			input: bytes.Repeat([]byte{16}, 16),
			want:  []byte{},
		},
		{
			name:  "single padding byte",
			input: append(bytes.Repeat([]byte{'a'}, 15), 1),
			want:  bytes.Repeat([]byte{'a'}, 15),
		},
		{
			name:    "zero padding byte",
			input:   append(bytes.Repeat([]byte{'a'}, 15), 0),
			wantErr: true,
		},
		{
			name:    "padding byte larger than block",
			input:   append(bytes.Repeat([]byte{'a'}, 15), 17),
			wantErr: true,
		},
		{
			name:    "inconsistent padding run",
			input:   append(bytes.Repeat([]byte{'a'}, 13), 3, 2, 3),
			wantErr: true,
		},
		{
			name:    "not block aligned",
			input:   []byte{1, 1, 1},
			wantErr: true,
		},
		{
			name:    "empty",
			input:   nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pkcs7Unpad(tt.input, 16)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidPadding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPKCS7_RoundTrip(t *testing.T) {
	for n := range 40 {
		data := bytes.Repeat([]byte{0xaa}, n)
		got, err := pkcs7Unpad(pkcs7Pad(data, 16), 16)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	}
}
