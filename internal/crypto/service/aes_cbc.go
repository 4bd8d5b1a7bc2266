package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"slices"

	"github.com/allisson/cryptokaro/internal/codec"
	cryptoDomain "github.com/allisson/cryptokaro/internal/crypto/domain"
)

// AESCBCCipher implements BlockCipher using AES in CBC mode with PKCS#7 padding.
//
// The key length selects AES-128, AES-192 or AES-256. A fresh IV is drawn from the
// random source on every Encrypt call and never derived from previous state.
//
// CBC provides confidentiality only. Decrypt reports every failure with the same
// error so that callers cannot tell padding errors apart from other failures.
//
// Thread safety:
//
//	The cipher holds an immutable cipher.Block and an io.Reader. With the default
//	crypto/rand.Reader it is safe for concurrent use.
type AESCBCCipher struct {
	block cipher.Block
	rand  io.Reader
}

// NewAESCBC creates an AES-CBC cipher that draws IVs from crypto/rand.
// The key must be 16, 24, or 32 bytes.
func NewAESCBC(key []byte) (*AESCBCCipher, error) {
	return NewAESCBCWithRand(key, rand.Reader)
}

// NewAESCBCWithRand is like NewAESCBC but reads IVs from r.
func NewAESCBCWithRand(key []byte, r io.Reader) (*AESCBCCipher, error) {
	if !slices.Contains(cryptoDomain.ValidAESKeySizes, len(key)) {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	return &AESCBCCipher{block: block, rand: r}, nil
}

// Encrypt pads plaintext to a whole number of blocks and encrypts it under a new IV.
// Empty plaintext produces one full block of padding.
func (a *AESCBCCipher) Encrypt(plaintext []byte) (ciphertext, iv []byte, err error) {
	iv, err = codec.ReadBlock(a.rand, cryptoDomain.BlockSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate iv: %w", err)
	}

	ciphertext = pkcs7Pad(plaintext, cryptoDomain.BlockSize)
	cipher.NewCBCEncrypter(a.block, iv).CryptBlocks(ciphertext, ciphertext)
	return ciphertext, iv, nil
}

// Decrypt decrypts ciphertext with iv and strips the padding.
//
// Returns ErrInvalidIVSize if the IV is not one block long. Ciphertext that is empty,
// not block aligned, or whose padding does not verify returns ErrDecryptionFailed.
func (a *AESCBCCipher) Decrypt(ciphertext, iv []byte) ([]byte, error) {
	if len(iv) != cryptoDomain.BlockSize {
		return nil, cryptoDomain.ErrInvalidIVSize
	}
	if len(ciphertext) == 0 || len(ciphertext)%cryptoDomain.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d", cryptoDomain.ErrDecryptionFailed, len(ciphertext))
	}

	buf := slices.Clone(ciphertext)
	cipher.NewCBCDecrypter(a.block, iv).CryptBlocks(buf, buf)

	plaintext, err := pkcs7Unpad(buf, cryptoDomain.BlockSize)
	if err != nil {
		cryptoDomain.Zero(buf)
		return nil, fmt.Errorf("%w: %w", cryptoDomain.ErrDecryptionFailed, err)
	}
	return plaintext, nil
}
