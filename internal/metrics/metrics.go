package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewMatchRequestsTotal returns a Prometheus counter for completed match computations
func NewMatchRequestsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "match_requests_total",
		Help: "Total number of completed match computations",
	})
}

// NewHauliersExcludedTotal returns a Prometheus counter for hauliers excluded from match results
func NewHauliersExcludedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hauliers_excluded_total",
		Help: "Total number of hauliers excluded from match results by unavailability or a zero score",
	})
}

// NewNotifyRetriesTotal returns a Prometheus counter for notification publish retries
func NewNotifyRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notify_retries_total",
		Help: "Total number of retry attempts performed by the notification gateway",
	})
}

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}
