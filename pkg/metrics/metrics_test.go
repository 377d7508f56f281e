package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("venue-test")

	m.IncQuote("Super Early Bird")
	m.IncQuote("Super Early Bird")
	m.IncQuote("")
	m.IncBooking("confirmed")
	m.IncAssistantRequest("ok")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.quotesTotal.WithLabelValues("venue-test", "Super Early Bird")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotesTotal.WithLabelValues("venue-test", "base_price")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("venue-test", "confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.assistantRequestsTotal.WithLabelValues("venue-test", "ok")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncQuote("x")
		m.IncBooking("confirmed")
		m.IncAssistantRequest("ok")
		m.ObserveHTTPRequest(http.MethodGet, "/", 200, time.Millisecond)
		m.ObserveDBQuery("select", time.Millisecond, nil)
		m.SetDBConnections(1, 1, 0)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("venue-test")
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/venues", http.StatusOK, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/api/v1/venues",service="venue-test",status="200"} 1`)
}
