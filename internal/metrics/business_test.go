package metrics

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the Prometheus output contains a business metric
// matching the given name, partial label pattern, and value. Uses regex to handle
// extra OTel scope labels injected by the Prometheus exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOpMetrics := NewNoOpBusinessMetrics()

	assert.NotNil(t, noOpMetrics)
	assert.IsType(t, &NoOpBusinessMetrics{}, noOpMetrics)

	assert.NotPanics(t, func() {
		ctx := context.Background()
		noOpMetrics.RecordOperation(ctx, "dispatch", "sha256", "success")
		noOpMetrics.RecordDuration(ctx, "dispatch", "sha256", time.Millisecond, "success")
		noOpMetrics.RecordFailure(ctx, "dispatch", "decryptAES", "DecryptionFailed")
	})
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider("integration_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	ctx := context.Background()

	bm.RecordOperation(ctx, "dispatch", "sha256", "success")
	bm.RecordOperation(ctx, "dispatch", "sha256", "success")
	bm.RecordOperation(ctx, "dispatch", "decryptAES", "error")
	bm.RecordFailure(ctx, "dispatch", "decryptAES", "DecryptionFailed")

	bm.RecordDuration(ctx, "dispatch", "sha256", 50*time.Microsecond, "success")
	bm.RecordDuration(ctx, "dispatch", "sha256", 60*time.Microsecond, "success")
	bm.RecordDuration(ctx, "dispatch", "decryptAES", 100*time.Microsecond, "error")

	var buf bytes.Buffer
	require.NoError(t, provider.WriteText(&buf))
	output := buf.String()

	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="dispatch".*operation="sha256".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="dispatch".*operation="decryptAES".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_failures_total`,
		`domain="dispatch".*kind="DecryptionFailed".*operation="decryptAES"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_count`,
		`domain="dispatch".*operation="sha256".*status="success"`,
		`2`,
	)
}
