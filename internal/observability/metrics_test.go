package observability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/auth-service/internal/observability"
)

func TestMetricsCounters(t *testing.T) {
	m := observability.NewMetrics()

	m.RecordRequest("/api/users/login", "POST", 200, 5*time.Millisecond)
	m.RecordRequest("/api/users/login", "POST", 200, 7*time.Millisecond)
	m.RecordRequest("/api/users/login", "POST", 404, time.Millisecond)
	m.RecordError("/api/users/login", "POST", "IDENTITY_NOT_FOUND")

	require.EqualValues(t, 2, m.RequestCount("/api/users/login", "POST", 200))
	require.EqualValues(t, 1, m.RequestCount("/api/users/login", "POST", 404))
	require.EqualValues(t, 0, m.RequestCount("/api/users/register", "POST", 200))
	require.EqualValues(t, 1, m.ErrorCount("/api/users/login", "POST", "IDENTITY_NOT_FOUND"))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *observability.Metrics
	m.RecordRequest("/x", "GET", 200, 0)
	m.RecordError("/x", "GET", "INTERNAL_ERROR")
	require.Zero(t, m.RequestCount("/x", "GET", 200))
}
