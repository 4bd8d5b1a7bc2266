package domain

import (
	"github.com/allisson/cryptokaro/internal/errors"
)

// Cryptographic operation error definitions.
//
// These wrap the kinds from internal/errors so the dispatcher can classify them
// without knowing about individual algorithms.
var (
	// ErrInvalidKeySize indicates an AES key is not 16, 24, or 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidKeyLength, "aes key must be 16, 24, or 32 bytes")

	// ErrAES256KeyRequired indicates a key other than 32 bytes was given to an AES-256 operation.
	ErrAES256KeyRequired = errors.Wrap(errors.ErrInvalidKeyLength, "aes-256 key must be exactly 32 bytes")

	// ErrEmptyHMACKey indicates an HMAC key decoded to zero bytes.
	ErrEmptyHMACKey = errors.Wrap(errors.ErrInvalidKeyLength, "hmac key must not be empty")

	// ErrInvalidIVSize indicates an IV is not exactly one block long.
	ErrInvalidIVSize = errors.Wrap(errors.ErrInvalidEncoding, "iv must be exactly 16 bytes")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// Wrong key, wrong IV, truncated and tampered ciphertext all map here. The
	// specific cause is never disclosed because distinguishing padding failures
	// from other failures gives a padding oracle.
	ErrDecryptionFailed = errors.Wrap(errors.ErrDecryptionFailed, "aes-cbc")

	// ErrPlaintextNotUTF8 indicates decrypted bytes cannot be returned as a JSON string.
	// It is reported with the same generic message as ErrDecryptionFailed.
	ErrPlaintextNotUTF8 = errors.Wrap(ErrDecryptionFailed, "plaintext is not valid UTF-8")

	// ErrInvalidKeyGenSize indicates the configured key generation size is out of range.
	ErrInvalidKeyGenSize = errors.Wrap(errors.ErrConfiguration, "key size must be between 1 and 1024 bytes")
)
