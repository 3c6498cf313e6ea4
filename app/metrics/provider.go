package metrics

import "time"

// Provider records application metrics without exposing the prometheus
// types to callers.
type Provider interface {
	IncrementHTTPRequests(method, route, status string)
	RecordHTTPRequestDuration(method, route string, duration time.Duration)
	IncrementAuthFailures()
}

type PrometheusProvider struct{}

func NewPrometheusProvider() Provider {
	return &PrometheusProvider{}
}

func (p *PrometheusProvider) IncrementHTTPRequests(method, route, status string) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
}

func (p *PrometheusProvider) RecordHTTPRequestDuration(method, route string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (p *PrometheusProvider) IncrementAuthFailures() {
	AuthFailuresTotal.Inc()
}
