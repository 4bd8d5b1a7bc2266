package usecase

import (
	"context"
	"fmt"

	cryptoService "github.com/allisson/cryptokaro/internal/crypto/service"
	dispatchDomain "github.com/allisson/cryptokaro/internal/dispatch/domain"
	"github.com/allisson/cryptokaro/internal/dispatch/dto"
	apperrors "github.com/allisson/cryptokaro/internal/errors"
)

// handlerFunc runs one operation against its raw payload.
type handlerFunc func(ctx context.Context, payload []byte) (dto.Response, error)

// Router implements Executor with a fixed operation table.
type Router struct {
	hasher        cryptoService.Hasher
	cipherManager cryptoService.CipherManager
	keyGenerator  cryptoService.KeyGenerator
	settings      SettingsProvider
	handlers      map[dispatchDomain.Operation]handlerFunc
}

// NewRouter creates a Router wired to every known operation.
func NewRouter(
	hasher cryptoService.Hasher,
	cipherManager cryptoService.CipherManager,
	keyGenerator cryptoService.KeyGenerator,
	settings SettingsProvider,
) *Router {
	r := &Router{
		hasher:        hasher,
		cipherManager: cipherManager,
		keyGenerator:  keyGenerator,
		settings:      settings,
	}
	r.handlers = map[dispatchDomain.Operation]handlerFunc{
		dispatchDomain.OpIntegrationTest: r.integrationTest,
		dispatchDomain.OpSHA256:          r.sha256,
		dispatchDomain.OpGenerateKey:     r.generateKey,
		dispatchDomain.OpHMAC:            r.hmac,
		dispatchDomain.OpEncryptAES:      r.encryptAES,
		dispatchDomain.OpDecryptAES:      r.decryptAES,
	}
	return r
}

// Execute routes req to its handler.
func (r *Router) Execute(ctx context.Context, req *dispatchDomain.Request) (dto.Response, error) {
	if req == nil {
		return nil, apperrors.Newf(apperrors.ErrMalformedInput, "Invalid request format: empty request.")
	}
	handler, ok := r.handlers[req.Operation]
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrUnknownOperation, "Unknown operation: %s", req.Operation)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("operation %s not started: %w", req.Operation, err)
	}
	return handler(ctx, req.Payload)
}
