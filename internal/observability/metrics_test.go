package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestRecordSignupUpdatesCounterAndGauge(t *testing.T) {
	RecordSignup("Test Signup Club", 3)

	require.Equal(t, 1.0, testutil.ToFloat64(signupCounter.WithLabelValues("Test Signup Club")))
	require.Equal(t, 3.0, gaugeValue(t, "Test Signup Club"))
}

func TestRecordSignupSkipsGaugeOnNegativeRoster(t *testing.T) {
	RecordSignup("Test Vanished Club", -1)

	require.Equal(t, 1.0, testutil.ToFloat64(signupCounter.WithLabelValues("Test Vanished Club")))
	require.Equal(t, 0.0, gaugeValue(t, "Test Vanished Club"))
}

func TestRecordUnregisterUpdatesCounterAndGauge(t *testing.T) {
	RecordUnregister("Test Unregister Club", 1)

	require.Equal(t, 1.0, testutil.ToFloat64(unregisterCounter.WithLabelValues("Test Unregister Club")))
	require.Equal(t, 1.0, gaugeValue(t, "Test Unregister Club"))
}

func TestRecordRejectionCountsByReason(t *testing.T) {
	RecordRejection("signup", "test_capacity_exceeded")
	RecordRejection("signup", "test_capacity_exceeded")
	RecordRejection("unregister", "test_not_registered")

	require.Equal(t, 2.0, testutil.ToFloat64(rejectionCounter.WithLabelValues("signup", "test_capacity_exceeded")))
	require.Equal(t, 1.0, testutil.ToFloat64(rejectionCounter.WithLabelValues("unregister", "test_not_registered")))
}

func gaugeValue(t *testing.T, activity string) float64 {
	t.Helper()

	metric := &dto.Metric{}
	require.NoError(t, rosterGauge.WithLabelValues(activity).Write(metric))
	gauge := metric.GetGauge()
	require.NotNil(t, gauge)
	return gauge.GetValue()
}
