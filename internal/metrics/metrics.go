package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petgallery_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "petgallery_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	FeedPagesServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "petgallery_feed_pages_served_total",
			Help: "Feed pages served",
		},
	)

	GuessesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petgallery_guesses_total",
			Help: "Submitted guesses by result",
		},
		[]string{"result"},
	)
)
