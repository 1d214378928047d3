package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operations counts exposed operations by outcome.
var Operations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "threadline_operations_total",
	Help: "Number of handled operations, labelled by operation and outcome.",
}, []string{"operation", "outcome"})
