package usecase

import (
	"context"

	"github.com/allisson/cryptokaro/internal/codec"
	cryptoDomain "github.com/allisson/cryptokaro/internal/crypto/domain"
	"github.com/allisson/cryptokaro/internal/dispatch/dto"
)

// sha256 digests textInput.
func (r *Router) sha256(_ context.Context, payload []byte) (dto.Response, error) {
	var req dto.TextRequest
	if err := dto.DecodePayload(payload, &req); err != nil {
		return nil, err
	}
	digest := r.hasher.SHA256([]byte(*req.TextInput))
	return dto.NewDigestResponse(codec.EncodeHex(digest)), nil
}

// hmac computes HMAC-SHA256 of textInput under the hex key. Any non-empty key length
// is accepted.
func (r *Router) hmac(_ context.Context, payload []byte) (dto.Response, error) {
	var req dto.KeyedTextRequest
	if err := dto.DecodePayload(payload, &req); err != nil {
		return nil, err
	}

	key, err := codec.DecodeHex("key", *req.Key)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	tag, err := r.hasher.HMACSHA256(key, []byte(*req.TextInput))
	if err != nil {
		return nil, err
	}
	return dto.NewDigestResponse(codec.EncodeHex(tag)), nil
}

// generateKey returns aesDefaultKeySize random bytes as hex.
func (r *Router) generateKey(_ context.Context, payload []byte) (dto.Response, error) {
	var req dto.EmptyRequest
	if err := dto.DecodePayload(payload, &req); err != nil {
		return nil, err
	}

	size, err := r.settings.KeySize()
	if err != nil {
		return nil, err
	}

	key, err := r.keyGenerator.Generate(size)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	return dto.NewKeyResponse(codec.EncodeHex(key)), nil
}
