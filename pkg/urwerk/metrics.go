package urwerk

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics records request counts and latencies of a client.
type PrometheusMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the client collectors with reg.
// Collectors already registered under the same names are reused.
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "urwerk",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "API requests by method and response status code (0 for transport failures).",
	}, []string{"method", "code"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "urwerk",
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Time until the response status was received.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	var err error

	requests, err = register(reg, requests)
	if err != nil {
		return nil, err
	}

	duration, err = register(reg, duration)
	if err != nil {
		return nil, err
	}

	return &PrometheusMetrics{requests: requests, duration: duration}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, collector C) (C, error) {
	err := reg.Register(collector)
	if err == nil {
		return collector, nil
	}

	are := prometheus.AlreadyRegisteredError{}
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return collector, fmt.Errorf("registering metrics collector: %w", err)
}

// Install adds the metrics interceptors to chain.
func (m *PrometheusMetrics) Install(chain *InterceptorChain) {
	chain.AddRequestInterceptor(m.RequestInterceptor())
	chain.AddResponseInterceptor(m.ResponseInterceptor())
}

// RequestInterceptor records the request start time.
func (m *PrometheusMetrics) RequestInterceptor() RequestInterceptor {
	return timingInterceptor
}

// ResponseInterceptor counts the response and observes its latency.
func (m *PrometheusMetrics) ResponseInterceptor() ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		m.requests.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()

		if latency, ok := elapsed(req); ok {
			m.duration.WithLabelValues(req.Method).Observe(latency.Seconds())
		}

		return nil
	}
}
