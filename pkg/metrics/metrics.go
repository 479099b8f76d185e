package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DocumentsSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "documents_saved_total", Help: "Number of saved documents by operation (insert or update)."},
		[]string{"op"},
	)
	Lookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "lookups_total", Help: "Number of lookups by id, by result (hit or miss)."},
		[]string{"result"},
	)
	Searches = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "docstore", Name: "searches_total", Help: "Number of executed searches."},
	)
	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: "docstore", Name: "search_results", Help: "Number of documents returned per search.", Buckets: prometheus.ExponentialBuckets(1, 4, 6)},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(DocumentsSaved)
	reg.MustRegister(Lookups)
	reg.MustRegister(Searches)
	reg.MustRegister(SearchResults)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
