// Package service provides the cryptographic primitives behind the dispatcher:
// AES-CBC encryption, SHA-256 and HMAC-SHA256 digests, and random key generation.
//
// Every type here is stateless apart from its key and random source, and is safe
// for concurrent use from multiple goroutines.
package service

// BlockCipher encrypts and decrypts with a fixed key, generating a fresh IV per encryption.
type BlockCipher interface {
	// Encrypt pads and encrypts plaintext under a new random IV and returns both.
	Encrypt(plaintext []byte) (ciphertext, iv []byte, err error)

	// Decrypt decrypts ciphertext with the given IV and removes the padding.
	Decrypt(ciphertext, iv []byte) ([]byte, error)
}

// CipherManager defines the interface for creating cipher instances under the key policy
// of the public operations.
type CipherManager interface {
	// CreateCipher creates a cipher for key, enforcing the operation's key length.
	CreateCipher(key []byte) (BlockCipher, error)
}

// Hasher computes message digests.
type Hasher interface {
	// SHA256 returns the 32-byte SHA-256 digest of data.
	SHA256(data []byte) []byte

	// HMACSHA256 returns the 32-byte HMAC-SHA256 tag of data under key.
	HMACSHA256(key, data []byte) ([]byte, error)
}

// KeyGenerator produces random key material.
type KeyGenerator interface {
	// Generate returns size bytes read from a cryptographically secure source.
	Generate(size int) ([]byte, error)
}
