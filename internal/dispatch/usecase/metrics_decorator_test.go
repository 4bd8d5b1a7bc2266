package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	dispatchDomain "github.com/allisson/cryptokaro/internal/dispatch/domain"
	"github.com/allisson/cryptokaro/internal/dispatch/dto"
	apperrors "github.com/allisson/cryptokaro/internal/errors"
	"github.com/allisson/cryptokaro/internal/metrics"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordFailure(ctx context.Context, domain, operation, kind string) {
	m.Called(ctx, domain, operation, kind)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

// mockExecutor is a mock implementation of Executor for testing.
type mockExecutor struct {
	mock.Mock
}

func (m *mockExecutor) Execute(ctx context.Context, req *dispatchDomain.Request) (dto.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(dto.Response), args.Error(1)
}

func TestNewExecutorWithMetrics(t *testing.T) {
	t.Parallel()

	decorator := NewExecutorWithMetrics(&mockExecutor{}, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.Implements(t, (*Executor)(nil), decorator)
}

func TestMetricsDecorator_Execute(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		t.Parallel()
		mockExec := &mockExecutor{}
		mockMetrics := &mockBusinessMetrics{}

		req := request(dispatchDomain.OpSHA256, `{"textInput":""}`)
		expected := dto.NewDigestResponse("abcd")

		mockExec.On("Execute", ctx, req).Return(expected, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "dispatch", "sha256", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "dispatch", "sha256", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		decorator := NewExecutorWithMetrics(mockExec, mockMetrics)
		resp, err := decorator.Execute(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, expected, resp)
		mockExec.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
		mockMetrics.AssertNotCalled(t, "RecordFailure", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_RecordsErrorMetricsWithKind", func(t *testing.T) {
		t.Parallel()
		mockExec := &mockExecutor{}
		mockMetrics := &mockBusinessMetrics{}

		req := request(dispatchDomain.OpDecryptAES, `{}`)
		expectedErr := apperrors.Newf(apperrors.ErrMissingField, "Missing 'key' in payload.")

		mockExec.On("Execute", ctx, req).Return(nil, expectedErr).Once()
		mockMetrics.On("RecordFailure", ctx, "dispatch", "decryptAES", "MissingField").Return().Once()
		mockMetrics.On("RecordOperation", ctx, "dispatch", "decryptAES", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "dispatch", "decryptAES", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		decorator := NewExecutorWithMetrics(mockExec, mockMetrics)
		resp, err := decorator.Execute(ctx, req)

		assert.Nil(t, resp)
		assert.Equal(t, expectedErr, err)
		mockExec.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_NilRequestIsLabelledUnknown", func(t *testing.T) {
		t.Parallel()
		mockExec := &mockExecutor{}
		mockMetrics := &mockBusinessMetrics{}

		expectedErr := apperrors.Newf(apperrors.ErrMalformedInput, "Invalid request format: empty request.")
		mockExec.On("Execute", ctx, (*dispatchDomain.Request)(nil)).Return(nil, expectedErr).Once()
		mockMetrics.On("RecordFailure", ctx, "dispatch", "unknown", "MalformedInput").Return().Once()
		mockMetrics.On("RecordOperation", ctx, "dispatch", "unknown", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "dispatch", "unknown", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		_, err := NewExecutorWithMetrics(mockExec, mockMetrics).Execute(ctx, nil)

		assert.Error(t, err)
		mockMetrics.AssertExpectations(t)
	})
}
