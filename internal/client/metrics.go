// Prometheus metrics for the backend client. Registered with the default
// registry at package init via promauto; metric names, labels and help
// strings live here and nowhere else.
package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// requestsTotal counts completed requests by method and HTTP status class
// ("2xx", "4xx", "5xx").
var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of backend requests that received a response.",
	},
	[]string{"method", "class"},
)

// requestErrorsTotal counts failed requests.
// Label:
//   - kind: "api" (non-2xx response) or "network" (no response received)
var requestErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_errors_total",
		Help:      "Total number of failed backend requests, by failure kind.",
	},
	[]string{"kind"},
)

// requestDuration measures request round-trip time by method.
var requestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Round-trip duration of backend requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
