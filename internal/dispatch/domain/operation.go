// Package domain defines the request envelope and the fixed set of operations
// the dispatcher can route to.
package domain

import (
	"slices"

	apperrors "github.com/allisson/cryptokaro/internal/errors"
)

// Operation identifies one handler. The names are the public API surface.
type Operation string

const (
	// OpIntegrationTest digests the configured test message and reports an HTML summary.
	OpIntegrationTest Operation = "integrationTest"
	// OpSHA256 computes the SHA-256 digest of the payload text.
	OpSHA256 Operation = "sha256"
	// OpGenerateKey returns random key material of the configured size.
	OpGenerateKey Operation = "generateKey"
	// OpHMAC computes HMAC-SHA256 of the payload text under a hex key.
	OpHMAC Operation = "hmac"
	// OpEncryptAES encrypts the payload text with AES-256-CBC under a fresh IV.
	OpEncryptAES Operation = "encryptAES"
	// OpDecryptAES decrypts AES-256-CBC ciphertext with the supplied key and IV.
	OpDecryptAES Operation = "decryptAES"
)

// Operations lists every known operation in a stable order.
var Operations = []Operation{
	OpIntegrationTest,
	OpSHA256,
	OpGenerateKey,
	OpHMAC,
	OpEncryptAES,
	OpDecryptAES,
}

// ParseOperation returns s as an Operation if it is one of the known names.
// The match is exact and case sensitive.
func ParseOperation(s string) (Operation, error) {
	op := Operation(s)
	if !slices.Contains(Operations, op) {
		return "", apperrors.Newf(apperrors.ErrUnknownOperation, "Unknown operation: %s", s)
	}
	return op, nil
}

// String returns the wire name of the operation.
func (o Operation) String() string {
	return string(o)
}
