package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/allisson/cryptokaro/internal/codec"
	cryptoDomain "github.com/allisson/cryptokaro/internal/crypto/domain"
	"github.com/allisson/cryptokaro/internal/dispatch/dto"
	apperrors "github.com/allisson/cryptokaro/internal/errors"
)

// encryptAES encrypts textInput with AES-256-CBC under a fresh IV.
func (r *Router) encryptAES(_ context.Context, payload []byte) (dto.Response, error) {
	var req dto.KeyedTextRequest
	if err := dto.DecodePayload(payload, &req); err != nil {
		return nil, err
	}

	key, err := codec.DecodeKey("key", *req.Key, cryptoDomain.AES256KeySize)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	cipher, err := r.cipherManager.CreateCipher(key)
	if err != nil {
		return nil, err
	}

	ciphertext, iv, err := cipher.Encrypt([]byte(*req.TextInput))
	if err != nil {
		return nil, err
	}
	return dto.NewEncryptResponse(codec.EncodeBase64(ciphertext), codec.EncodeHex(iv)), nil
}

// decryptAES reverses encryptAES. All three inputs are decoded before any
// cryptographic work starts.
func (r *Router) decryptAES(_ context.Context, payload []byte) (dto.Response, error) {
	var req dto.DecryptRequest
	if err := dto.DecodePayload(payload, &req); err != nil {
		return nil, err
	}

	key, err := codec.DecodeHex("key", *req.Key)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	iv, err := codec.DecodeHex("iv", *req.IV)
	if err != nil {
		return nil, err
	}
	ciphertext, err := codec.DecodeBase64("ciphertext", *req.Ciphertext)
	if err != nil {
		return nil, err
	}

	if len(key) != cryptoDomain.AES256KeySize {
		return nil, apperrors.Newf(
			apperrors.ErrInvalidKeyLength,
			"'key' must decode to exactly %d bytes, got %d",
			cryptoDomain.AES256KeySize,
			len(key),
		)
	}
	if len(iv) != cryptoDomain.BlockSize {
		return nil, apperrors.Newf(
			apperrors.ErrInvalidEncoding,
			"'iv' must decode to exactly %d bytes, got %d",
			cryptoDomain.BlockSize,
			len(iv),
		)
	}

	cipher, err := r.cipherManager.CreateCipher(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := cipher.Decrypt(ciphertext, iv)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(plaintext)

	// string() would replace invalid sequences with U+FFFD and return altered plaintext.
	if !utf8.Valid(plaintext) {
		return nil, cryptoDomain.ErrPlaintextNotUTF8
	}

	return dto.NewDecryptResponse(string(plaintext)), nil
}
