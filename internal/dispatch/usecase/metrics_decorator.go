package usecase

import (
	"context"
	"time"

	dispatchDomain "github.com/allisson/cryptokaro/internal/dispatch/domain"
	"github.com/allisson/cryptokaro/internal/dispatch/dto"
	apperrors "github.com/allisson/cryptokaro/internal/errors"
	"github.com/allisson/cryptokaro/internal/metrics"
)

const metricsDomain = "dispatch"

// executorWithMetrics decorates Executor with metrics instrumentation.
type executorWithMetrics struct {
	next    Executor
	metrics metrics.BusinessMetrics
}

// NewExecutorWithMetrics wraps an Executor with metrics recording.
func NewExecutorWithMetrics(executor Executor, m metrics.BusinessMetrics) Executor {
	return &executorWithMetrics{
		next:    executor,
		metrics: m,
	}
}

// Execute records count and duration per operation, plus the error kind on failure.
func (e *executorWithMetrics) Execute(ctx context.Context, req *dispatchDomain.Request) (dto.Response, error) {
	start := time.Now()
	resp, err := e.next.Execute(ctx, req)

	operation := "unknown"
	if req != nil {
		operation = req.Operation.String()
	}

	status := "success"
	if err != nil {
		status = "error"
		e.metrics.RecordFailure(ctx, metricsDomain, operation, apperrors.KindOf(err))
	}

	e.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	e.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)

	return resp, err
}
