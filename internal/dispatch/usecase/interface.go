// Package usecase routes parsed requests to the operation handlers and wraps the
// result in a typed response.
package usecase

import (
	"context"

	dispatchDomain "github.com/allisson/cryptokaro/internal/dispatch/domain"
	"github.com/allisson/cryptokaro/internal/dispatch/dto"
)

// Executor runs exactly one operation for a parsed request.
type Executor interface {
	// Execute runs the handler for req.Operation with req.Payload.
	// The returned error carries one of the kinds from internal/errors.
	Execute(ctx context.Context, req *dispatchDomain.Request) (dto.Response, error)
}

// SettingsProvider supplies the external scalars read by generateKey and integrationTest.
type SettingsProvider interface {
	// KeySize returns the configured length in bytes of generated keys.
	KeySize() (int, error)
	// Message returns the configured integration test message.
	Message() (string, error)
}
