package service

import (
	"crypto/subtle"
	"errors"
)

var errInvalidPadding = errors.New("invalid padding")

// pkcs7Pad returns a copy of data extended to a multiple of blockSize.
// A full block of padding is added when data is already aligned.
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// pkcs7Unpad validates and strips PKCS#7 padding.
// The last block is inspected in full regardless of where a mismatch occurs.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errInvalidPadding
	}

	n := int(data[len(data)-1])
	good := subtle.ConstantTimeLessOrEq(1, n) & subtle.ConstantTimeLessOrEq(n, blockSize)

	tail := data[len(data)-blockSize:]
	for i := range blockSize {
		// Bytes within the padding run must equal n; bytes before it are unconstrained.
		inPad := subtle.ConstantTimeLessOrEq(blockSize-i, n)
		match := subtle.ConstantTimeByteEq(tail[i], byte(n))
		good &= subtle.ConstantTimeSelect(inPad, match, 1)
	}

	if good != 1 {
		return nil, errInvalidPadding
	}
	return data[:len(data)-n], nil
}
