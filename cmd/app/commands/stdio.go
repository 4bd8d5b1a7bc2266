package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// RunStdio serves requests line by line until EOF or until ctx is done.
// Each non-blank input line is one request; each response is written as one line.
// A line longer than maxRequestBytes is answered with a size error and the session
// continues.
//
// When ctx is done a reader that implements io.Closer is closed to unblock the pending
// read. Other readers stop at their next line.
func RunStdio(
	ctx context.Context,
	dispatcher Dispatcher,
	logger *slog.Logger,
	streams IOTuple,
	maxRequestBytes int,
) error {
	logger.Info("stdio session started")

	stop := context.AfterFunc(ctx, func() {
		if closer, ok := streams.Reader.(io.Closer); ok {
			_ = closer.Close()
		}
	})
	defer stop()

	lines := newLineReader(streams.Reader, maxRequestBytes)
	served := 0
	for {
		line, truncated, err := lines.next()
		if ctx.Err() != nil {
			logger.Info("stdio session interrupted", slog.Int("requests", served))
			return nil
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read request line: %w", err)
		}

		request := requestText(line, truncated)
		if request == "" {
			continue
		}
		if truncated {
			logger.Warn("request line exceeds limit", slog.Int("max_request_bytes", maxRequestBytes))
		}

		if err := writeLine(streams.Writer, dispatcher.Dispatch(ctx, request)); err != nil {
			return err
		}
		served++
	}

	logger.Info("stdio session finished", slog.Int("requests", served))
	return nil
}
