package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// RunInvoke dispatches a single request and writes the response.
// The request is taken from the request argument, or read from streams.Reader when empty.
func RunInvoke(
	ctx context.Context,
	dispatcher Dispatcher,
	logger *slog.Logger,
	streams IOTuple,
	request string,
	maxRequestBytes int,
) error {
	if request == "" {
		raw, err := readRequest(streams.Reader, maxRequestBytes)
		if err != nil {
			return err
		}
		request = raw
	}

	logger.Debug("dispatching request", slog.Int("bytes", len(request)))
	return writeLine(streams.Writer, dispatcher.Dispatch(ctx, strings.TrimSpace(request)))
}

// readRequest reads up to one byte past the limit, so oversized input still reaches
// the dispatcher and is rejected there.
func readRequest(r io.Reader, maxRequestBytes int) (string, error) {
	if maxRequestBytes > 0 {
		r = io.LimitReader(r, int64(maxRequestBytes)+1)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read request: %w", err)
	}
	return string(raw), nil
}
