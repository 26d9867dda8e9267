package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UserOperationsTotal counts user mutations by operation and outcome.
	UserOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "userapi_user_operations_total",
		Help: "Total number of user create/update/delete operations by outcome",
	}, []string{"operation", "outcome"})

	// DatabaseQueryLatency records database query latency by operation.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "userapi_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

// RecordUserOperation increments the mutation counter for the given
// operation ("create", "update", "delete") and outcome ("ok", "error").
func RecordUserOperation(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	UserOperationsTotal.WithLabelValues(operation, outcome).Inc()
}
