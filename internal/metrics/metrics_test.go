package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPath(t *testing.T) {
	tests := map[string]string{
		"":                       "/",
		"/":                      "/",
		"/api/subscriptions":     "/api/subscriptions",
		"/api/subscriptions/17":  "/api/subscriptions/:id",
		"/api/analytics":         "/api/analytics",
		"/swagger/index.html":    "/swagger",
		"/random/thing":          "other",
		"/api/subscriptions/1/x": "other",
	}

	for in, want := range tests {
		assert.Equal(t, want, canonicalPath(in), in)
	}
}

func TestInstrumentHandlerCountsRequests(t *testing.T) {
	h := InstrumentHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	before := testutil.ToFloat64(httpRequests.WithLabelValues("DELETE", "/api/subscriptions/:id", "404"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/subscriptions/99", nil))

	after := testutil.ToFloat64(httpRequests.WithLabelValues("DELETE", "/api/subscriptions/:id", "404"))
	assert.Equal(t, before+1, after)
}

func TestStoreMetrics(t *testing.T) {
	SetSubscriptionCount(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(subscriptionsStored))

	before := testutil.ToFloat64(subscriptionOps.WithLabelValues("create", "ok"))
	RecordStoreOp("create", true)
	assert.Equal(t, before+1, testutil.ToFloat64(subscriptionOps.WithLabelValues("create", "ok")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	SetSubscriptionCount(1)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "subsage_store_subscriptions 1"))
	assert.True(t, strings.Contains(rec.Body.String(), "go_goroutines"))
}
