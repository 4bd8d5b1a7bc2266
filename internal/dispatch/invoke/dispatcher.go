// Package invoke is the text boundary of the dispatcher: one request document in,
// one response document out.
package invoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	dispatchDomain "github.com/allisson/cryptokaro/internal/dispatch/domain"
	"github.com/allisson/cryptokaro/internal/dispatch/dto"
	"github.com/allisson/cryptokaro/internal/dispatch/usecase"
	apperrors "github.com/allisson/cryptokaro/internal/errors"
)

// Rendered messages for errors whose detail stays in the logs.
const (
	DecryptionFailedMessage = "decryption failed; check key, IV, and ciphertext"
	InternalErrorMessage    = "Internal error while processing the request."
)

// Dispatcher turns raw request documents into raw response documents.
//
// Dispatch never panics and never returns an empty string. It is safe for concurrent
// use when the executor is.
type Dispatcher struct {
	executor        usecase.Executor
	logger          *slog.Logger
	maxRequestBytes int
}

// NewDispatcher creates a Dispatcher. A maxRequestBytes of zero or less disables the
// size limit.
func NewDispatcher(executor usecase.Executor, logger *slog.Logger, maxRequestBytes int) *Dispatcher {
	return &Dispatcher{
		executor:        executor,
		logger:          logger,
		maxRequestBytes: maxRequestBytes,
	}
}

// Dispatch parses raw, runs the named operation and renders the outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, raw string) (out string) {
	start := time.Now()
	logger := d.logger.With(slog.String("request_id", newRequestID()))

	var operation dispatchDomain.Operation
	defer func() {
		if r := recover(); r != nil {
			logger.Error("operation panicked",
				slog.String("operation", operation.String()),
				slog.String("kind", apperrors.KindInternal),
				slog.Any("panic", r),
			)
			out = d.render(logger, dto.NewErrorResponse(InternalErrorMessage))
		}
	}()

	resp, err := d.execute(ctx, raw, &operation)
	if err != nil {
		kind := apperrors.KindOf(err)
		attrs := []any{
			slog.String("operation", operation.String()),
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		}
		if kind == apperrors.KindInternal {
			logger.Error("operation failed", attrs...)
		} else {
			logger.Warn("operation failed", attrs...)
		}
		return d.render(logger, dto.NewErrorResponse(errorMessage(err)))
	}

	logger.Debug("operation completed",
		slog.String("operation", operation.String()),
		slog.String("status", resp.GetStatus()),
		slog.Duration("duration", time.Since(start)),
	)
	return d.render(logger, resp)
}

// execute parses and runs the request, recording the operation name once known.
func (d *Dispatcher) execute(ctx context.Context, raw string, operation *dispatchDomain.Operation) (dto.Response, error) {
	if d.maxRequestBytes > 0 && len(raw) > d.maxRequestBytes {
		return nil, apperrors.Newf(
			apperrors.ErrMalformedInput,
			"Invalid request format: request exceeds %d bytes.",
			d.maxRequestBytes,
		)
	}

	req, err := dispatchDomain.ParseRequest([]byte(raw))
	if err != nil {
		return nil, err
	}
	*operation = req.Operation

	resp, err := d.executor.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("operation %s returned no response", req.Operation)
	}
	return resp, nil
}

// render serializes a response without escaping HTML, so integrationTest markup stays
// readable on the wire.
func (d *Dispatcher) render(logger *slog.Logger, resp dto.Response) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		logger.Error("failed to render response", slog.Any("error", err))
		return `{"status":"error","error":"` + InternalErrorMessage + `"}`
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// errorMessage is the human readable text placed in an error response.
func errorMessage(err error) string {
	switch {
	case apperrors.Is(err, apperrors.ErrDecryptionFailed):
		return DecryptionFailedMessage
	case apperrors.KindOf(err) == apperrors.KindInternal:
		return InternalErrorMessage
	default:
		return err.Error()
	}
}

// newRequestID returns a time-ordered id, falling back to a random one.
func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
