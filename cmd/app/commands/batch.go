package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// RunBatch dispatches every non-blank input line with at most concurrency requests in
// flight and writes the responses in input order. Lines longer than maxRequestBytes
// are answered with a size error in their place.
func RunBatch(
	ctx context.Context,
	dispatcher Dispatcher,
	logger *slog.Logger,
	streams IOTuple,
	concurrency int,
	maxRequestBytes int,
) error {
	if concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", concurrency)
	}

	var requests []string
	lines := newLineReader(streams.Reader, maxRequestBytes)
	for {
		line, truncated, err := lines.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read batch input: %w", err)
		}
		if request := requestText(line, truncated); request != "" {
			requests = append(requests, request)
		}
	}

	start := time.Now()
	responses := make([]string, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, request := range requests {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			responses[i] = dispatcher.Dispatch(gctx, request)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	for _, response := range responses {
		if err := writeLine(streams.Writer, response); err != nil {
			return err
		}
	}

	logger.Info("batch completed",
		slog.Int("requests", len(requests)),
		slog.Int("concurrency", concurrency),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}
