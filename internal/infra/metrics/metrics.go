package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "partsbot_api_requests_total",
		Help: "Requests to the parts API by method, path and status code.",
	}, []string{"method", "path", "status"})

	Checkouts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partsbot_checkouts_total",
		Help: "Completed sales.",
	})

	CheckoutFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partsbot_checkout_failures_total",
		Help: "Checkouts rejected by the parts API.",
	})

	SearchesDispatched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partsbot_searches_dispatched_total",
		Help: "Part searches sent after the debounce delay.",
	})

	SearchesSuperseded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partsbot_searches_superseded_total",
		Help: "Part searches dropped because newer input arrived.",
	})
)
