package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveOperation(t *testing.T) {
	m := New()

	m.ObserveOperation("DeleteProfile", ResultPreconditionFailed)
	m.ObserveOperation("DeleteProfile", ResultPreconditionFailed)
	m.ObserveOperation("DeleteProfile", ResultOK)

	assert.InDelta(t, 2, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("DeleteProfile", ResultPreconditionFailed)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("DeleteProfile", ResultOK)), 0)
}

func TestMetrics_Gauges(t *testing.T) {
	m := New()

	m.SetProfiles(3)
	m.SetGlobalActive(true)
	assert.InDelta(t, 3, testutil.ToFloat64(m.ProfilesLive), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.GlobalActive), 0)

	m.SetGlobalActive(false)
	assert.InDelta(t, 0, testutil.ToFloat64(m.GlobalActive), 0)
}

func TestMetrics_ObserveEvent(t *testing.T) {
	m := New()

	m.ObserveEvent("profile.created", nil)
	m.ObserveEvent("profile.created", errors.New("broker down"))

	assert.InDelta(t, 1, testutil.ToFloat64(m.EventsPublishedTotal.WithLabelValues("profile.created", ResultOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.EventsPublishedTotal.WithLabelValues("profile.created", ResultError)), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveOperation("ListProfiles", ResultOK)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `ember_settings_operations_total{operation="ListProfiles",result="ok"} 1`)
}
