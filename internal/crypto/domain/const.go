package domain

// AES-CBC parameters. CBC carries no authentication tag, so ciphertext integrity
// rests on padding checks alone; callers that need tamper evidence must pair the
// ciphertext with an HMAC over it.
const (
	// BlockSize is the AES block size and IV length in bytes.
	BlockSize = 16

	// AES256KeySize is the key length required by the encryptAES and decryptAES operations.
	AES256KeySize = 32

	// DigestSize is the length of SHA-256 digests and HMAC-SHA256 tags in bytes.
	DigestSize = 32

	// MaxGeneratedKeySize bounds the configured size of generated keys.
	MaxGeneratedKeySize = 1024
)

// ValidAESKeySizes lists the key lengths accepted by the AES block cipher itself
// (AES-128, AES-192 and AES-256).
var ValidAESKeySizes = []int{16, 24, 32}
