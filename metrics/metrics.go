// Package metrics exports object graph diagnostics to Prometheus.
package metrics

import (
	"errors"

	"github.com/amp-labs/objectgraph/objectgraph"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ReasonNotFound      = "not_found"
	ReasonAlreadyExists = "already_exists"
	ReasonOther         = "other"
)

// Reporter is an objectgraph.Reporter that counts events in
// objectgraph_diagnostics_total.
//
// Labels:
//   - op: the graph operation (get, add, update, remove).
//   - reason: not_found or already_exists.
//
// Usage example in dashboards:
//   - sum(rate(objectgraph_diagnostics_total[5m])) by (op) - Misses per operation
//   - objectgraph_diagnostics_total{reason="already_exists"} - Duplicate inserts
type Reporter struct {
	diagnostics *prometheus.CounterVec
}

var _ objectgraph.Reporter = (*Reporter)(nil)

// NewReporter registers the diagnostics counter with reg and returns a
// Reporter feeding it. A nil reg means prometheus.DefaultRegisterer.
// Registering twice with the same registry panics, as with promauto.
func NewReporter(reg prometheus.Registerer) *Reporter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &Reporter{
		diagnostics: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "objectgraph_diagnostics_total",
			Help: "The total number of object graph lookups that failed on key presence",
		}, []string{"op", "reason"}),
	}
}

func (r *Reporter) Report(event objectgraph.Event) {
	r.diagnostics.WithLabelValues(string(event.Op), reasonOf(event.Err)).Inc()
}

func reasonOf(err error) string {
	switch {
	case errors.Is(err, objectgraph.ErrNotFound):
		return ReasonNotFound
	case errors.Is(err, objectgraph.ErrAlreadyExists):
		return ReasonAlreadyExists
	default:
		return ReasonOther
	}
}
