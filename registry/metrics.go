package registry

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	opGet = "get"
	opSet = "set"

	resultOK               = "ok"
	resultNotFound         = "not_found"
	resultTransport        = "transport"
	resultPortalResponse   = "portal_response"
	resultInvalidSignature = "invalid_signature"
	resultStaleRevision    = "stale_revision"
	resultCache            = "cache"
)

type metrics struct {
	requests *prometheus.CounterVec
}

// newMetrics registers the request counter with reg. A counter registered
// earlier by another Registry is shared. On any other registration error the
// returned metrics still count, but nothing exports them.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skynet",
		Subsystem: "registry",
		Name:      "requests_total",
		Help:      "Registry operations by operation and result.",
	}, []string{"op", "result"})

	if reg == nil {
		return &metrics{requests: requests}, nil
	}

	err := reg.Register(requests)
	if err == nil {
		return &metrics{requests: requests}, nil
	}

	var registered prometheus.AlreadyRegisteredError
	if errors.As(err, &registered) {
		if existing, ok := registered.ExistingCollector.(*prometheus.CounterVec); ok {
			return &metrics{requests: existing}, nil
		}
	}

	return &metrics{requests: requests}, fmt.Errorf("failed to register metrics: %w", err)
}

func (m *metrics) observe(op, result string) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(op, result).Inc()
}
