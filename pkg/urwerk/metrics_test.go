package urwerk

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewPedanticRegistry()

	metrics, err := NewPrometheusMetrics(reg)
	require.NoError(t, err)

	chain := NewInterceptorChain()
	metrics.Install(chain)

	ctx := context.Background()

	for _, status := range []int{http.StatusOK, http.StatusOK, http.StatusNotFound} {
		req := &Request{Method: http.MethodGet, URL: "http://dev/api/system"}
		require.NoError(t, chain.ExecuteRequestInterceptors(ctx, req))
		require.NoError(t, chain.ExecuteResponseInterceptors(ctx, req, &Response{StatusCode: status}))
	}

	expected := `
# HELP urwerk_client_requests_total API requests by method and response status code (0 for transport failures).
# TYPE urwerk_client_requests_total counter
urwerk_client_requests_total{code="200",method="GET"} 2
urwerk_client_requests_total{code="404",method="GET"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "urwerk_client_requests_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.duration))
}

func TestPrometheusMetrics_ReusesRegisteredCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	first, err := NewPrometheusMetrics(reg)
	require.NoError(t, err)

	second, err := NewPrometheusMetrics(reg)
	require.NoError(t, err)

	assert.Same(t, first.requests, second.requests)
	assert.Same(t, first.duration, second.duration)
}

func TestPrometheusMetrics_WithoutTiming(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	metrics, err := NewPrometheusMetrics(reg)
	require.NoError(t, err)

	req := &Request{Method: http.MethodPost}
	require.NoError(t, metrics.ResponseInterceptor()(context.Background(), req, &Response{}))

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodPost, "0")), 0)
	assert.Equal(t, 0, testutil.CollectAndCount(metrics.duration))
}
